package service

import (
	"context"
	"fmt"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/store"
	"github.com/avelichko/notekeeper/models"
)

// noteService is the concrete implementation of NoteService.
//
// Every mutation derives ownership from the stored note record: the note is
// loaded first and the session principal is compared against its persisted
// owner. Path parameters or form fields never influence the decision.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote validates the form and persists a new note owned by principal.
// The owner argument is the username under whose page the note is being
// created; it must match the principal.
//
// Returns the persisted note or:
//   - ErrUnauthorized if principal is absent or differs from owner.
//   - *ValidationError if the form fields violate their bounds.
func (n *noteService) CreateNote(ctx context.Context, principal, owner string, form models.NoteForm) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(principal, owner); err != nil {
		log.Debug().Str("resource", owner).Msg("note creation denied")
		return models.Note{}, err
	}

	if err := NewValidationError(form.Validate()); err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		Title:    form.Title,
		Content:  form.Content,
		Username: principal,
	}

	createdNote, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// NoteByID loads a note and checks that principal owns it. Used to prefill
// the edit form.
//
// Returns store.ErrNoteNotFound if the note is absent and ErrUnauthorized if
// it belongs to someone else.
func (n *noteService) NoteByID(ctx context.Context, principal string, id int64) (models.Note, error) {
	return n.loadOwned(ctx, principal, id)
}

// UpdateNote applies the validated form to an existing note after the
// ownership check against the stored owner.
func (n *noteService) UpdateNote(ctx context.Context, principal string, id int64, form models.NoteForm) (models.Note, error) {
	log := logger.FromContext(ctx)

	if _, err := n.loadOwned(ctx, principal, id); err != nil {
		return models.Note{}, err
	}

	if err := NewValidationError(form.Validate()); err != nil {
		return models.Note{}, err
	}

	updatedNote, err := n.noteRepository.UpdateNote(ctx, models.NoteUpdate{
		ID:      id,
		Title:   &form.Title,
		Content: &form.Content,
	})
	if err != nil {
		log.Err(err).Int64("id", id).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// DeleteNote removes an existing note after the ownership check against the
// stored owner. The deleted note is returned so the caller can redirect to
// the owner's page.
//
// Deleting an absent note returns store.ErrNoteNotFound, never silent
// success.
func (n *noteService) DeleteNote(ctx context.Context, principal string, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.loadOwned(ctx, principal, id)
	if err != nil {
		return models.Note{}, err
	}

	if err := n.noteRepository.DeleteNote(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("note deletion ended with error")
		return models.Note{}, fmt.Errorf("note deletion ended with error: %w", err)
	}

	return note, nil
}

// loadOwned fetches the note and gates it on the stored owner.
func (n *noteService) loadOwned(ctx context.Context, principal string, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.FindNoteByID(ctx, id)
	if err != nil {
		if principal == "" {
			// anonymous callers get the 401 before learning the note is gone
			return models.Note{}, ErrUnauthorized
		}
		return models.Note{}, err
	}

	if err := Authorize(principal, note.Username); err != nil {
		log.Debug().Int64("id", id).Msg("note access denied")
		return models.Note{}, err
	}

	return note, nil
}
