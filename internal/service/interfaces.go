package service

import (
	"context"

	"github.com/avelichko/notekeeper/models"
)

type AuthService interface {
	// RegisterUser validates the registration form, hashes the password,
	// and persists the new account. Duplicate username/email surface as a
	// *ValidationError on the corresponding field.
	RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error)

	// Authenticate verifies the credentials and returns the matching user.
	// Every failure is ErrInvalidCredentials, regardless of cause.
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

type SessionService interface {
	// Issue creates a signed session token bound to username, carrying a
	// fresh anti-forgery token.
	Issue(username string) (models.Token, error)

	// Parse validates a raw session token string. Any failure is
	// normalised to ErrSessionInvalid.
	Parse(tokenString string) (models.Token, error)
}

type UserService interface {
	// UserPage returns the user record and owned notes for username,
	// after checking that principal is authorized to view them.
	UserPage(ctx context.Context, principal, username string) (models.User, []models.Note, error)

	// DeleteUser removes the account and all owned notes, after checking
	// that principal is the account owner.
	DeleteUser(ctx context.Context, principal, username string) error
}

type NoteService interface {
	// CreateNote validates the form and persists a note owned by principal
	// under the page owner's account.
	CreateNote(ctx context.Context, principal, owner string, form models.NoteForm) (models.Note, error)

	// NoteByID loads a note and checks that principal owns it.
	NoteByID(ctx context.Context, principal string, id int64) (models.Note, error)

	// UpdateNote loads the note, checks ownership against the stored
	// owner, validates the form, and applies the mutation.
	UpdateNote(ctx context.Context, principal string, id int64, form models.NoteForm) (models.Note, error)

	// DeleteNote loads the note, checks ownership against the stored
	// owner, and deletes it.
	DeleteNote(ctx context.Context, principal string, id int64) (models.Note, error)
}
