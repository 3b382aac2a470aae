package service

import (
	"errors"
	"fmt"

	"github.com/avelichko/notekeeper/models"
)

var (
	// ErrInvalidCredentials is returned by Authenticate for every failed
	// login. The same value covers unknown-username and wrong-password so
	// callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("bad name/password")

	// ErrUnauthorized is returned when the session principal is missing or
	// does not match the owner of the addressed resource.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrSessionInvalid is returned when a session token fails validation
	// (expired, wrong issuer, malformed, or bad signature).
	ErrSessionInvalid = errors.New("session is expired or invalid")

	// ErrTokenCreationFailed is returned when a session token cannot be
	// generated or signed.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ValidationError carries per-field validation messages back to the form
// that produced them. Handlers unwrap it with [errors.As] and re-render the
// form with the messages inline.
type ValidationError struct {
	Fields models.FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// NewValidationError wraps the given field errors. Returns nil when the map
// is empty so callers can return the result directly.
func NewValidationError(fields models.FieldErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
