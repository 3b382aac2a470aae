// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package models

// Maximum field lengths enforced both by form validation and by the
// database column definitions. Keep in sync with the migrations.
//
// MaxPasswordLen is bounded by bcrypt, not by a column: GenerateFromPassword
// rejects inputs over 72 bytes, so anything longer has to be refused at the
// form instead of surfacing as a hashing failure.
const (
	MaxUsernameLen  = 20
	MaxPasswordLen  = 72
	MaxEmailLen     = 50
	MaxFirstNameLen = 30
	MaxLastNameLen  = 30
)

// User represents a site account used for authentication and note ownership.
// The username doubles as the primary key; every note references it.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique account identifier chosen at registration.
	// It is also the primary key of the users table.
	Username string `json:"username"`

	// Password holds the bcrypt hash of the account password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	Password string `json:"-"`

	// Email is the unique contact address supplied at registration.
	Email string `json:"email"`

	// FirstName is the account holder's given name.
	FirstName string `json:"first_name"`

	// LastName is the account holder's family name.
	LastName string `json:"last_name"`
}

// FullName returns the user's display name composed of first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
