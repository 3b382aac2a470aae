package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		owner     string
		allowed   bool
	}{
		{"owner matches", "alice", "alice", true},
		{"foreign owner", "alice", "bob", false},
		{"anonymous", "", "alice", false},
		{"anonymous empty owner", "", "", false},
		{"principal set empty owner", "alice", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.owner)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrUnauthorized)
			}
		})
	}
}
