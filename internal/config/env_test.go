// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		"REALTIME_HEARTBEAT_INTERVAL":     "25s",
		"REALTIME_RECONNECT_BASE_DELAY":   "1s",
		"REALTIME_MAX_RECONNECT_ATTEMPTS": "5",
		"REALTIME_QUEUE_CAP":              "256",
		"REALTIME_HANDSHAKE_TIMEOUT":      "10s",

		"WORKERS_POLL_INTERVAL": "30s",

		"STORAGE_DB_DATABASE_URI": "file:namaskah.db",

		"SERVER_ADDRESS":         "localhost:9090",
		"SERVER_TOKEN_SIGN_KEY":  "jwt_secret",
		"SERVER_TOKEN_ISSUER":    "namaskah-dev",
		"SERVER_TOKEN_DURATION":  "24h",
		"SERVER_REQUEST_TIMEOUT": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 25*time.Second, cfg.Realtime.HeartbeatInterval)
	assert.Equal(t, time.Second, cfg.Realtime.ReconnectBaseDelay)
	assert.Equal(t, 5, cfg.Realtime.MaxReconnectAttempts)
	assert.Equal(t, 256, cfg.Realtime.QueueCap)
	assert.Equal(t, 10*time.Second, cfg.Realtime.HandshakeTimeout)

	assert.Equal(t, 30*time.Second, cfg.Workers.PollInterval)

	assert.Equal(t, "file:namaskah.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "jwt_secret", cfg.Server.TokenSignKey)
	assert.Equal(t, "namaskah-dev", cfg.Server.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.Server.TokenDuration)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_ADDRESS":                 "localhost:8080",
		"REALTIME_MAX_RECONNECT_ATTEMPTS": "3",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Adapter partially filled
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	// Realtime partially filled
	assert.Equal(t, 3, cfg.Realtime.MaxReconnectAttempts)
	assert.Zero(t, cfg.Realtime.HeartbeatInterval)

	// Others untouched
	assert.Equal(t, Workers{}, cfg.Workers)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Realtime{}, cfg.Realtime)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Server{}, cfg.Server)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"REALTIME_HEARTBEAT_INTERVAL": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"WORKERS_POLL_INTERVAL": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Workers.PollInterval)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	prefixes := []string{"CONFIG", "ADAPTER_", "REALTIME_", "WORKERS_", "STORAGE_", "SERVER_"}
	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		for _, p := range prefixes {
			if key == p || strings.HasPrefix(key, p) {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
		}
	}
}
