// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package http

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avelichko/notekeeper/internal/config"
	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/service"
	"github.com/avelichko/notekeeper/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, form models.RegisterForm) (models.User, error)
	authenticateFn func(ctx context.Context, username, password string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error) {
	return m.registerUserFn(ctx, form)
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return m.authenticateFn(ctx, username, password)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	userPageFn   func(ctx context.Context, principal, username string) (models.User, []models.Note, error)
	deleteUserFn func(ctx context.Context, principal, username string) error
}

func (m *mockUserService) UserPage(ctx context.Context, principal, username string) (models.User, []models.Note, error) {
	return m.userPageFn(ctx, principal, username)
}

func (m *mockUserService) DeleteUser(ctx context.Context, principal, username string) error {
	return m.deleteUserFn(ctx, principal, username)
}

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createNoteFn func(ctx context.Context, principal, owner string, form models.NoteForm) (models.Note, error)
	noteByIDFn   func(ctx context.Context, principal string, id int64) (models.Note, error)
	updateNoteFn func(ctx context.Context, principal string, id int64, form models.NoteForm) (models.Note, error)
	deleteNoteFn func(ctx context.Context, principal string, id int64) (models.Note, error)
}

func (m *mockNoteService) CreateNote(ctx context.Context, principal, owner string, form models.NoteForm) (models.Note, error) {
	return m.createNoteFn(ctx, principal, owner, form)
}

func (m *mockNoteService) NoteByID(ctx context.Context, principal string, id int64) (models.Note, error) {
	return m.noteByIDFn(ctx, principal, id)
}

func (m *mockNoteService) UpdateNote(ctx context.Context, principal string, id int64, form models.NoteForm) (models.Note, error) {
	return m.updateNoteFn(ctx, principal, id, form)
}

func (m *mockNoteService) DeleteNote(ctx context.Context, principal string, id int64) (models.Note, error) {
	return m.deleteNoteFn(ctx, principal, id)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testSessions is a real session service backed by a throwaway test key.
// Handler tests use it so that cookies round-trip through genuine tokens.
func testSessions() service.SessionService {
	return service.NewSessionService(config.App{
		SessionSignKey:  "handler-test-sign-key",
		SessionIssuer:   "notekeeper-test",
		SessionDuration: time.Hour,
	}, logger.Nop())
}

// newTestHandler builds a Handler around the given mocks. Nil mocks are
// allowed for services the test never reaches.
func newTestHandler(auth *mockAuthService, users *mockUserService, notes *mockNoteService) *Handler {
	svcs := &service.Services{
		SessionService: testSessions(),
	}
	if auth != nil {
		svcs.AuthService = auth
	}
	if users != nil {
		svcs.UserService = users
	}
	if notes != nil {
		svcs.NoteService = notes
	}
	return NewHandler(svcs, logger.Nop())
}

// loginAs issues a session token for username and returns the cookie plus
// the anti-forgery token mutating forms must echo.
func loginAs(t *testing.T, h *Handler, username string) (*http.Cookie, string) {
	t.Helper()
	token, err := h.services.SessionService.Issue(username)
	require.NoError(t, err)
	return &http.Cookie{Name: sessionCookieName, Value: token.SignedString}, token.CSRFToken
}

// formBody encodes form values for a POST request body.
func formBody(values map[string]string) *url.Values {
	form := url.Values{}
	for k, v := range values {
		form.Set(k, v)
	}
	return &form
}
