package store

import (
	"context"

	"github.com/avelichko/notekeeper/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// DeleteUser removes the user and all owned notes in one transaction.
	DeleteUser(ctx context.Context, username string) error
}

type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	FindNoteByID(ctx context.Context, id int64) (models.Note, error)
	FindNotesByOwner(ctx context.Context, username string) ([]models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}
