// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package service

// Authorize is the single ownership gate applied before any read or write of
// an owner-scoped resource. Access is allowed iff the session principal is
// present and equal to the resource owner.
//
// The owner argument must come from the stored resource (or, for user-scoped
// routes, from the address being compared against the session). Client- or
// path-supplied ownership claims must never reach this check as principal.
func Authorize(principal, owner string) error {
	if principal == "" || principal != owner {
		return ErrUnauthorized
	}
	return nil
}
