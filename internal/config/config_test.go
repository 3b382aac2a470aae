package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_PopulatesFields verifies that env variables land in the
// expected nested config fields via the envPrefix chain.
func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("APP_SESSION_SIGN_KEY", "top-secret")
	t.Setenv("APP_SESSION_DURATION", "45m")
	t.Setenv("STORAGE_DB_DRIVER", "sqlite3")
	t.Setenv("STORAGE_DB_DATABASE_URI", "notes.db")
	t.Setenv("SERVER_ADDRESS", "localhost:9000")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "top-secret", cfg.App.SessionSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.SessionDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
}

// TestParseJSON_StringDurations verifies that durations written as "12h"
// style strings decode correctly.
func TestParseJSON_StringDurations(t *testing.T) {
	raw := map[string]any{
		"app": map[string]any{
			"session_sign_key": "json-key",
			"session_duration": "12h",
		},
		"storage": map[string]any{
			"db": map[string]any{"driver": "pgx", "dsn": "postgres://localhost/notes"},
		},
		"server": map[string]any{
			"http_address":    "0.0.0.0:8080",
			"request_timeout": "30s",
		},
	}

	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.App.SessionSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
}

// TestParseJSON_FileMissing verifies the error path for an absent file.
func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

// TestValidate covers the startup invariants on the merged config.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid pgx config",
			cfg: StructuredConfig{
				App:     App{SessionSignKey: "k"},
				Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/notes"}},
			},
			wantErr: nil,
		},
		{
			name: "missing sign key",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/notes"}},
			},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name: "missing dsn",
			cfg: StructuredConfig{
				App:     App{SessionSignKey: "k"},
				Storage: Storage{DB: DB{Driver: "pgx"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown driver",
			cfg: StructuredConfig{
				App:     App{SessionSignKey: "k"},
				Storage: Storage{DB: DB{Driver: "oracle", DSN: "x"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestApplyDefaults verifies fallback values and that secrets get none.
func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultSessionIssuer, cfg.App.SessionIssuer)
	assert.Equal(t, DefaultSessionDuration, cfg.App.SessionDuration)
	assert.Equal(t, DefaultDBDriver, cfg.Storage.DB.Driver)
	assert.Empty(t, cfg.App.SessionSignKey)
}

// TestNetAddress_SetAndString exercises the flag.Value implementation.
func TestNetAddress_SetAndString(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", addr.String())

	require.Error(t, addr.Set("no-port"))
	require.Error(t, addr.Set("localhost:-1"))
	require.Error(t, addr.Set("not-an-ip:80"))
}
