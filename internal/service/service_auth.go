package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/avelichko/notekeeper/internal/config"
	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/store"
	"github.com/avelichko/notekeeper/models"
)

// dummyHash is a valid bcrypt hash of an unguessable value. Authenticate
// runs the password comparison against it when the username does not exist,
// so the unknown-user path costs the same as the wrong-password path.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// bcryptCost is the work factor applied when hashing passwords at
	// registration. Zero selects bcrypt.DefaultCost.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with the hashing cost from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the form against the field length bounds, hashes the raw
// password with bcrypt, and delegates persistence to the UserRepository.
// The raw password is never stored and never logged.
//
// Returns the persisted user or:
//   - *ValidationError if any field is empty or exceeds its bound, or if
//     the username or email is already taken (surfaced on that field).
//   - A wrapped storage error if the repository call fails otherwise.
func (a *authService) RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := NewValidationError(form.Validate()); err != nil {
		log.Debug().Str("username", form.Username).Msg("registration form failed validation")
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:  form.Username,
		Password:  string(hashed),
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			fields := models.FieldErrors{}
			fields.Add("username", "Username already taken")
			return models.User{}, NewValidationError(fields)
		case errors.Is(err, store.ErrEmailExists):
			fields := models.FieldErrors{}
			fields.Add("email", "Email already registered")
			return models.User{}, NewValidationError(fields)
		default:
			log.Err(err).Str("username", form.Username).Msg("user creation ended with error")
			return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
		}
	}

	return registeredUser, nil
}

// Authenticate verifies the supplied credentials.
//
// It looks the account up by exact username match and compares the raw
// password against the stored bcrypt hash. When the username does not exist
// the comparison still runs against a fixed dummy hash, so neither the error
// nor the timing reveals which of the two credentials was wrong.
//
// Returns the authenticated user record or ErrInvalidCredentials for every
// failed attempt. Unexpected storage errors are wrapped and returned as-is.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// burn the same hashing cost as a real comparison
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			log.Debug().Msg("authentication failed")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		log.Debug().Msg("authentication failed")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
