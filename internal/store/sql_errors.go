// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// duplicateKeyError maps a driver-level unique-constraint violation to one of
// the field-specific sentinel errors. It returns nil when err is not a
// unique-constraint violation, so callers can fall through to generic error
// handling.
//
// The username/email distinction relies on the constraint identity reported
// by the driver:
//   - PostgreSQL exposes the violated constraint name on *pgconn.PgError
//     ("users_pkey" for the username primary key, "users_email_key" for the
//     email unique constraint, see migrations/postgres).
//   - SQLite reports the violated column in the error message
//     ("UNIQUE constraint failed: users.email").
func duplicateKeyError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgerrcode.UniqueViolation {
			return nil
		}
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrEmailExists
		}
		return ErrUsernameExists
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique &&
			sqliteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
			return nil
		}
		if strings.Contains(sqliteErr.Error(), "email") {
			return ErrEmailExists
		}
		return ErrUsernameExists
	}

	return nil
}
