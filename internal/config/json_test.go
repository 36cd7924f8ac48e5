package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_FullConfig verifies that every group maps from the JSON file
// into the structured config.
func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"http_address":    "api.namaskah.local:8080",
			"request_timeout": "15s",
		},
		"realtime": map[string]any{
			"heartbeat_interval":     "25s",
			"reconnect_base_delay":   "1s",
			"max_reconnect_attempts": 5,
			"queue_cap":              128,
			"handshake_timeout":      "10s",
		},
		"workers": map[string]any{
			"poll_interval": "30s",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "file:cache.db"},
		},
		"server": map[string]any{
			"http_address":    "localhost:9090",
			"token_sign_key":  "secret",
			"token_issuer":    "namaskah-dev",
			"token_duration":  "24h",
			"request_timeout": "30s",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "api.namaskah.local:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 25*time.Second, cfg.Realtime.HeartbeatInterval)
	assert.Equal(t, time.Second, cfg.Realtime.ReconnectBaseDelay)
	assert.Equal(t, 5, cfg.Realtime.MaxReconnectAttempts)
	assert.Equal(t, 128, cfg.Realtime.QueueCap)
	assert.Equal(t, 10*time.Second, cfg.Realtime.HandshakeTimeout)

	assert.Equal(t, 30*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, "file:cache.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.Server.TokenSignKey)
	assert.Equal(t, 24*time.Hour, cfg.Server.TokenDuration)

	// the JSON path never re-propagates itself
	assert.Empty(t, cfg.JSONFilePath)
}

// TestParseJSON_MissingFile verifies the error path for a dangling path.
func TestParseJSON_MissingFile(t *testing.T) {
	cfg, err := parseJSON("/no/such/file.json")
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestDuration_UnmarshalJSON covers the accepted duration encodings.
func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Duration
		fails    bool
	}{
		{"string form", `"1h30m"`, 90 * time.Minute, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"garbage string", `"not-a-duration"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.raw))
			if tt.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}
