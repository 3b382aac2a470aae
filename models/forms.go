package models

import (
	"fmt"
	"strings"
)

// FieldErrors maps a form field name to the validation messages attached to
// it. An empty map means the form passed validation.
type FieldErrors map[string][]string

// Add appends a message to the named field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Has reports whether any message is attached to the named field.
func (f FieldErrors) Has(field string) bool {
	return len(f[field]) > 0
}

// RegisterForm carries the fields submitted by the registration page.
type RegisterForm struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// Validate checks the registration fields against the required/length rules
// of the users table. Returns the collected per-field messages.
func (f RegisterForm) Validate() FieldErrors {
	errs := FieldErrors{}
	checkRequiredMax(errs, "username", f.Username, MaxUsernameLen)
	checkRequiredMax(errs, "password", f.Password, MaxPasswordLen)
	checkRequiredMax(errs, "email", f.Email, MaxEmailLen)
	checkRequiredMax(errs, "first_name", f.FirstName, MaxFirstNameLen)
	checkRequiredMax(errs, "last_name", f.LastName, MaxLastNameLen)

	if f.Email != "" && !strings.Contains(f.Email, "@") {
		errs.Add("email", "Invalid email address")
	}

	return errs
}

// LoginForm carries the fields submitted by the login page.
type LoginForm struct {
	Username string
	Password string
}

// Validate checks the login fields. Length bounds match the registration
// rules so that an overlong value can never reach the password check.
func (f LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	checkRequiredMax(errs, "username", f.Username, MaxUsernameLen)
	checkRequiredMax(errs, "password", f.Password, MaxPasswordLen)
	return errs
}

// NoteForm carries the fields submitted by the note create/update pages.
type NoteForm struct {
	Title   string
	Content string
}

// Validate checks the note fields. Content is required but unbounded.
func (f NoteForm) Validate() FieldErrors {
	errs := FieldErrors{}
	checkRequiredMax(errs, "title", f.Title, MaxTitleLen)
	if f.Content == "" {
		errs.Add("content", "This field is required")
	}
	return errs
}

func checkRequiredMax(errs FieldErrors, field, value string, max int) {
	if value == "" {
		errs.Add(field, "This field is required")
		return
	}
	if len(value) > max {
		errs.Add(field, fmt.Sprintf("Field cannot be longer than %d characters", max))
	}
}
