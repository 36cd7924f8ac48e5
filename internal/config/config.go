// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the Namaskah
// client tooling. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the REST endpoint settings used by the client
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Realtime holds tuning knobs for the realtime synchronization client
	// (heartbeat, reconnection backoff, outbound queue).
	Realtime Realtime `envPrefix:"REALTIME_"`

	// Workers holds configuration for background workers, currently the
	// polling fallback.
	Workers Workers `envPrefix:"WORKERS_"`

	// Storage holds settings for the local snapshot cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network and token settings for the local development
	// server (cmd/devserver).
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the REST endpoint settings used by the client.
type Adapter struct {
	// HTTPAddress is the base URL of the Namaskah API
	// (e.g. "https://api.namaskah.app" or "localhost:8080").
	// The realtime endpoint is derived from it: ws:// for http://,
	// wss:// for https://.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound REST requests
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Realtime holds tuning knobs for the realtime synchronization client.
// Zero values fall back to the defaults applied by the realtime package.
type Realtime struct {
	// HeartbeatInterval is the period between keepalive pings while the
	// connection is ready.
	// Env: REALTIME_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	// ReconnectBaseDelay seeds the exponential reconnection backoff; the
	// n-th attempt waits ReconnectBaseDelay * 2^(n-1).
	// Env: REALTIME_RECONNECT_BASE_DELAY
	ReconnectBaseDelay time.Duration `env:"RECONNECT_BASE_DELAY"`

	// MaxReconnectAttempts bounds automatic reconnection; once exceeded
	// the client gives up and hands over to the polling fallback.
	// Env: REALTIME_MAX_RECONNECT_ATTEMPTS
	MaxReconnectAttempts int `env:"MAX_RECONNECT_ATTEMPTS"`

	// QueueCap bounds the outbound queue that buffers messages sent while
	// the connection is not ready. On overflow the oldest entry is dropped.
	// Env: REALTIME_QUEUE_CAP
	QueueCap int `env:"QUEUE_CAP"`

	// HandshakeTimeout bounds the transport dial, including the websocket
	// upgrade.
	// Env: REALTIME_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PollInterval defines how often the polling fallback refreshes
	// tracked entities over REST when realtime delivery is unavailable.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Storage holds settings for the local snapshot cache.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite database path
	// (e.g. "file:namaskah.db?_fk=1" or "namaskah.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and token settings for the development server.
type Server struct {
	// HTTPAddress is the TCP address the devserver listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session JWT remains valid
	// (e.g. "24h").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
