package service

import (
	"context"
	"fmt"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/store"
	"github.com/avelichko/notekeeper/models"
)

// userService is the concrete implementation of UserService. It composes the
// user and note repositories behind the ownership gate: the authorization
// check always runs before any lookup, so an unauthorized caller learns
// nothing about whether the addressed account exists.
type userService struct {
	userRepository store.UserRepository
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repositories.
func NewUserService(userRepository store.UserRepository, noteRepository store.NoteRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// UserPage returns the account record and owned notes for username.
//
// The principal/username comparison runs first; ErrUnauthorized is returned
// before any database access, so the 401 wins over the 404 for foreign
// usernames.
func (u *userService) UserPage(ctx context.Context, principal, username string) (models.User, []models.Note, error) {
	log := logger.FromContext(ctx)

	if err := Authorize(principal, username); err != nil {
		log.Debug().Str("resource", username).Msg("user page access denied")
		return models.User{}, nil, err
	}

	user, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, nil, fmt.Errorf("user lookup failed: %w", err)
	}

	notes, err := u.noteRepository.FindNotesByOwner(ctx, username)
	if err != nil {
		return models.User{}, nil, fmt.Errorf("notes lookup failed: %w", err)
	}

	return user, notes, nil
}

// DeleteUser removes the account and every note it owns. The repository
// performs both deletes inside one transaction.
func (u *userService) DeleteUser(ctx context.Context, principal, username string) error {
	log := logger.FromContext(ctx)

	if err := Authorize(principal, username); err != nil {
		log.Debug().Str("resource", username).Msg("user delete denied")
		return err
	}

	if err := u.userRepository.DeleteUser(ctx, username); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}

	log.Info().Str("username", username).Msg("user account deleted")
	return nil
}
