package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It handles note creation, lookup, partial update, and deletion against the
// "notes" table.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns it with the server-assigned
// fields (ID, CreatedAt, UpdatedAt) populated via a RETURNING clause.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.Title, note.Content, note.Username)

	if err := scanNote(row, &note); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// FindNoteByID retrieves the note with the given surrogate key.
//
// Error handling:
//   - No matching row → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) FindNoteByID(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, findNoteByID, id)

	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// FindNotesByOwner retrieves all notes owned by username, ordered by id.
// An owner with no notes yields an empty slice, not an error.
func (r *noteRepository) FindNotesByOwner(ctx context.Context, username string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findNotesByOwner, username)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.Username, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Msg("error: scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote applies a partial mutation to an existing note. Only non-nil
// fields of update are written; updated_at is always refreshed. The UPDATE
// statement is assembled with squirrel so that the SET clause contains
// exactly the touched columns.
//
// Error handling:
//   - Note absent → [ErrNoteNotFound].
//   - Query assembly failure → wrapped [ErrBuildingSQLQuery].
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("notes").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, title, content, username, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: building update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanNote(row, &note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// DeleteNote removes the note with the given id.
//
// Deleting an already-deleted note is reported as [ErrNoteNotFound] rather
// than silent success, so repeated deletes surface to the caller.
func (r *noteRepository) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func scanNote(row *sql.Row, note *models.Note) error {
	return row.Scan(&note.ID, &note.Title, &note.Content, &note.Username, &note.CreatedAt, &note.UpdatedAt)
}
