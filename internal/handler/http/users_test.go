package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/notekeeper/internal/service"
	"github.com/avelichko/notekeeper/internal/store"
	"github.com/avelichko/notekeeper/models"
)

func TestUserPage_RendersOwnNotes(t *testing.T) {
	users := &mockUserService{
		userPageFn: func(_ context.Context, principal, username string) (models.User, []models.Note, error) {
			require.Equal(t, "alice", principal)
			require.Equal(t, "alice", username)
			return models.User{Username: "alice", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"},
				[]models.Note{{ID: 1, Title: "First note", Username: "alice"}}, nil
		},
	}
	h := newTestHandler(nil, users, nil)
	cookie, csrf := loginAs(t, h, "alice")

	rec := getPage(h.Init(), "/users/alice", cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Alice Smith")
	assert.Contains(t, body, "First note")
	// every mutating form on the page carries the session's anti-forgery token
	assert.Contains(t, body, csrf)
}

func TestUserPage_AnonymousGets401(t *testing.T) {
	users := &mockUserService{
		userPageFn: func(_ context.Context, principal, username string) (models.User, []models.Note, error) {
			t.Fatal("UserPage must not be called without a session")
			return models.User{}, nil, nil
		},
	}
	h := newTestHandler(nil, users, nil)

	rec := getPage(h.Init(), "/users/alice")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestUserPage_ForeignUserGets401 verifies that the answer for a foreign
// page does not depend on whether that user exists.
func TestUserPage_ForeignUserGets401(t *testing.T) {
	users := &mockUserService{
		userPageFn: func(_ context.Context, principal, username string) (models.User, []models.Note, error) {
			return models.User{}, nil, service.ErrUnauthorized
		},
	}
	h := newTestHandler(nil, users, nil)
	router := h.Init()
	cookie, _ := loginAs(t, h, "bob")

	existing := getPage(router, "/users/alice", cookie)
	missing := getPage(router, "/users/no-such-user", cookie)

	assert.Equal(t, http.StatusUnauthorized, existing.Code)
	assert.Equal(t, http.StatusUnauthorized, missing.Code)
	assert.Equal(t, existing.Body.String(), missing.Body.String())
}

func TestUserPage_MissingOwnAccountGets404(t *testing.T) {
	users := &mockUserService{
		userPageFn: func(_ context.Context, principal, username string) (models.User, []models.Note, error) {
			return models.User{}, nil, store.ErrUserNotFound
		},
	}
	h := newTestHandler(nil, users, nil)
	cookie, _ := loginAs(t, h, "ghost")

	rec := getPage(h.Init(), "/users/ghost", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_ClearsSessionAndRedirects(t *testing.T) {
	deleted := ""
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, principal, username string) error {
			require.Equal(t, "alice", principal)
			deleted = username
			return nil
		},
	}
	h := newTestHandler(nil, users, nil)
	cookie, csrf := loginAs(t, h, "alice")

	rec := postForm(h.Init(), "/users/alice/delete", map[string]string{csrfFieldName: csrf}, cookie)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Equal(t, "alice", deleted)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
}

func TestDeleteUser_RequiresCSRF(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, principal, username string) error {
			t.Fatal("DeleteUser must not be called without the anti-forgery token")
			return nil
		},
	}
	h := newTestHandler(nil, users, nil)
	cookie, _ := loginAs(t, h, "alice")

	rec := postForm(h.Init(), "/users/alice/delete", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteUser_ForeignAccountGets401(t *testing.T) {
	users := &mockUserService{
		deleteUserFn: func(_ context.Context, principal, username string) error {
			return service.ErrUnauthorized
		},
	}
	h := newTestHandler(nil, users, nil)
	cookie, csrf := loginAs(t, h, "bob")

	rec := postForm(h.Init(), "/users/alice/delete", map[string]string{csrfFieldName: csrf}, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
