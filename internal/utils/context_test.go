package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelichko/notekeeper/models"
)

func TestGetSessionFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, models.Token{Username: "alice", CSRFToken: "tok"})

	token, ok := GetSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", token.Username)
	assert.Equal(t, "tok", token.CSRFToken)
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetPrincipalFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, models.Token{Username: "alice"})

	principal, ok := GetPrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", principal)
}

func TestGetPrincipalFromContext_Anonymous(t *testing.T) {
	principal, ok := GetPrincipalFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, principal)
}

func TestGetPrincipalFromContext_EmptyUsername(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, models.Token{})

	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}
