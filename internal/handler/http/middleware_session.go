// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package http

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/utils"
)

// withSession decodes the session cookie when present and stores the parsed
// token in the request context under [utils.SessionCtxKey].
//
// The middleware never rejects a request on its own: a missing, expired, or
// tampered cookie simply leaves the request anonymous, so that public pages
// can still adapt to a logged-in visitor. Enforcement happens separately in
// requireSession.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.SessionService.Parse(cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("discarding unusable session cookie")
			clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireSession rejects anonymous requests with HTTP 401 Unauthorized.
// It must be mounted after withSession.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if _, ok := utils.GetPrincipalFromContext(r.Context()); !ok {
			log.Err(ErrNoSessionCookie).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireCSRF enforces the double-submit check on mutating requests.
//
// The csrf_token form field must match the anti-forgery token bound to the
// current session. Comparison is constant-time so that the check does not
// leak token bytes through response timing. Must be mounted after
// requireSession, which guarantees a session is present.
func (h *Handler) requireCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		session, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			log.Err(ErrNoSessionCookie).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if err := r.ParseForm(); err != nil {
			log.Err(err).Msg("cannot parse form")
			http.Error(w, "cannot parse form", http.StatusBadRequest)
			return
		}

		submitted := r.PostFormValue(csrfFieldName)
		if session.CSRFToken == "" ||
			subtle.ConstantTimeCompare([]byte(submitted), []byte(session.CSRFToken)) != 1 {
			log.Err(ErrInvalidCSRFToken).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
