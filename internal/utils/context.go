// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// session token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/avelichko/notekeeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the decoded session token in the
// context. Used together with GetSessionFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, token)
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the decoded session token from the context.
//
// Returns the token and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(SessionCtxKey).(models.Token)
	return token, ok
}

// GetPrincipalFromContext retrieves the session principal (the username the
// session is bound to) from the context. The empty string with ok == false
// means the request is anonymous.
func GetPrincipalFromContext(ctx context.Context) (string, bool) {
	token, ok := GetSessionFromContext(ctx)
	if !ok || token.Username == "" {
		return "", false
	}
	return token.Username, true
}
