package service

import (
	"context"

	"github.com/avelichko/notekeeper/models"
)

// ─────────────────────────────────────────────
// Repository mocks
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	deleteUserFn         func(ctx context.Context, username string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, username string) error {
	return m.deleteUserFn(ctx, username)
}

// mockNoteRepository implements store.NoteRepository for unit tests.
type mockNoteRepository struct {
	createNoteFn       func(ctx context.Context, note models.Note) (models.Note, error)
	findNoteByIDFn     func(ctx context.Context, id int64) (models.Note, error)
	findNotesByOwnerFn func(ctx context.Context, username string) ([]models.Note, error)
	updateNoteFn       func(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	deleteNoteFn       func(ctx context.Context, id int64) error
}

func (m *mockNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	return m.createNoteFn(ctx, note)
}

func (m *mockNoteRepository) FindNoteByID(ctx context.Context, id int64) (models.Note, error) {
	return m.findNoteByIDFn(ctx, id)
}

func (m *mockNoteRepository) FindNotesByOwner(ctx context.Context, username string) ([]models.Note, error) {
	return m.findNotesByOwnerFn(ctx, username)
}

func (m *mockNoteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	return m.updateNoteFn(ctx, update)
}

func (m *mockNoteRepository) DeleteNote(ctx context.Context, id int64) error {
	return m.deleteNoteFn(ctx, id)
}
