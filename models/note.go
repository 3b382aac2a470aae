// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package models

import "time"

// MaxTitleLen is the upper bound on a note title, matching the column
// definition in the notes table.
const MaxTitleLen = 100

// Note is a short text record owned by exactly one user. Ownership is
// carried by Username, a foreign key to the users table, and is the basis
// of every authorization decision about the note.
type Note struct {
	// ID is the server-assigned surrogate key of the note.
	ID int64 `json:"id"`

	// Title is a short human-readable heading.
	Title string `json:"title"`

	// Content is the note body. Unbounded text.
	Content string `json:"content"`

	// Username identifies the owning user. Authorization always compares
	// the session principal against this stored value, never against a
	// client-supplied claim.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the note was first persisted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last successful mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteUpdate describes a partial mutation of an existing note. Nil fields
// are left untouched.
type NoteUpdate struct {
	// ID identifies the note to mutate.
	ID int64

	// Title, when non-nil, replaces the stored title.
	Title *string

	// Content, when non-nil, replaces the stored content.
	Content *string
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
