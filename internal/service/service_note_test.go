package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/store"
	"github.com/avelichko/notekeeper/models"
)

func aliceNote() models.Note {
	return models.Note{ID: 7, Title: "T", Content: "C", Username: "alice"}
}

// TestCreateNote_Success verifies that a valid note is persisted under the
// session principal.
func TestCreateNote_Success(t *testing.T) {
	repo := &mockNoteRepository{
		createNoteFn: func(_ context.Context, note models.Note) (models.Note, error) {
			note.ID = 1
			return note, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	note, err := svc.CreateNote(context.Background(), "alice", "alice", models.NoteForm{Title: "T", Content: "C"})
	require.NoError(t, err)
	assert.Equal(t, "alice", note.Username)
	assert.Equal(t, int64(1), note.ID)
}

// TestCreateNote_ForeignPage verifies that creating a note under another
// user's page is rejected before validation or persistence.
func TestCreateNote_ForeignPage(t *testing.T) {
	repo := &mockNoteRepository{
		createNoteFn: func(_ context.Context, note models.Note) (models.Note, error) {
			t.Fatal("CreateNote must not be called")
			return models.Note{}, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	_, err := svc.CreateNote(context.Background(), "bob", "alice", models.NoteForm{Title: "T", Content: "C"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// TestCreateNote_Validation verifies the title/content rules.
func TestCreateNote_Validation(t *testing.T) {
	repo := &mockNoteRepository{}
	svc := NewNoteService(repo, logger.Nop())

	_, err := svc.CreateNote(context.Background(), "alice", "alice", models.NoteForm{Title: "", Content: ""})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Fields.Has("title"))
	assert.True(t, vErr.Fields.Has("content"))
}

// TestUpdateNote_DerivesOwnerFromStoredNote verifies that the ownership
// check uses the persisted owner, not anything the caller supplies.
func TestUpdateNote_DerivesOwnerFromStoredNote(t *testing.T) {
	repo := &mockNoteRepository{
		findNoteByIDFn: func(_ context.Context, id int64) (models.Note, error) {
			return aliceNote(), nil
		},
		updateNoteFn: func(_ context.Context, update models.NoteUpdate) (models.Note, error) {
			t.Fatal("UpdateNote must not be called for a foreign principal")
			return models.Note{}, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	_, err := svc.UpdateNote(context.Background(), "bob", 7, models.NoteForm{Title: "X", Content: "Y"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// TestUpdateNote_Success verifies the owner can mutate their note.
func TestUpdateNote_Success(t *testing.T) {
	repo := &mockNoteRepository{
		findNoteByIDFn: func(_ context.Context, id int64) (models.Note, error) {
			return aliceNote(), nil
		},
		updateNoteFn: func(_ context.Context, update models.NoteUpdate) (models.Note, error) {
			require.NotNil(t, update.Title)
			require.NotNil(t, update.Content)
			return models.Note{ID: update.ID, Title: *update.Title, Content: *update.Content, Username: "alice"}, nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	note, err := svc.UpdateNote(context.Background(), "alice", 7, models.NoteForm{Title: "New", Content: "Body"})
	require.NoError(t, err)
	assert.Equal(t, "New", note.Title)
}

// TestDeleteNote_AbsentNote verifies that deleting a missing note reports
// not-found for an authenticated caller and 401 for an anonymous one.
func TestDeleteNote_AbsentNote(t *testing.T) {
	repo := &mockNoteRepository{
		findNoteByIDFn: func(_ context.Context, id int64) (models.Note, error) {
			return models.Note{}, store.ErrNoteNotFound
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	_, err := svc.DeleteNote(context.Background(), "alice", 404)
	assert.ErrorIs(t, err, store.ErrNoteNotFound)

	_, err = svc.DeleteNote(context.Background(), "", 404)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// TestDeleteNote_ForeignOwner verifies a cross-user delete is rejected and
// the note survives.
func TestDeleteNote_ForeignOwner(t *testing.T) {
	deleted := false
	repo := &mockNoteRepository{
		findNoteByIDFn: func(_ context.Context, id int64) (models.Note, error) {
			return aliceNote(), nil
		},
		deleteNoteFn: func(_ context.Context, id int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	_, err := svc.DeleteNote(context.Background(), "bob", 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, deleted, "note must remain after an unauthorized delete")
}

// TestDeleteNote_OwnerSucceeds verifies the happy path returns the deleted
// note for the redirect target.
func TestDeleteNote_OwnerSucceeds(t *testing.T) {
	repo := &mockNoteRepository{
		findNoteByIDFn: func(_ context.Context, id int64) (models.Note, error) {
			return aliceNote(), nil
		},
		deleteNoteFn: func(_ context.Context, id int64) error {
			return nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	note, err := svc.DeleteNote(context.Background(), "alice", 7)
	require.NoError(t, err)
	assert.Equal(t, "alice", note.Username)
}

// TestNoteByID_Owner verifies the edit-form load path.
func TestNoteByID_Owner(t *testing.T) {
	repo := &mockNoteRepository{
		findNoteByIDFn: func(_ context.Context, id int64) (models.Note, error) {
			return aliceNote(), nil
		},
	}
	svc := NewNoteService(repo, logger.Nop())

	note, err := svc.NoteByID(context.Background(), "alice", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), note.ID)

	_, err = svc.NoteByID(context.Background(), "bob", 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
