// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package http

import "errors"

// Sentinel errors used by the session and anti-forgery middleware. Callers
// can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned by the session middleware when the
	// incoming request does not carry a session cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidCSRFToken is returned when a mutating request does not echo
	// the anti-forgery token bound to the current session.
	ErrInvalidCSRFToken = errors.New("invalid anti-forgery token")
)
