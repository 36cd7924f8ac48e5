package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the Namaskah API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound REST requests.
	RequestTimeout time.Duration
}

// ClientRealtime holds tuning knobs for the realtime synchronization client.
type ClientRealtime struct {
	// HeartbeatInterval is the keepalive period while the connection is ready.
	HeartbeatInterval time.Duration
	// ReconnectBaseDelay seeds the exponential reconnection backoff.
	ReconnectBaseDelay time.Duration
	// MaxReconnectAttempts bounds automatic reconnection.
	MaxReconnectAttempts int
	// QueueCap bounds the outbound queue (drop-oldest on overflow).
	QueueCap int
	// HandshakeTimeout bounds the transport dial.
	HandshakeTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite path used by the local snapshot cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval defines how often the polling fallback refreshes
	// tracked entities.
	PollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Realtime contains realtime client tuning.
	Realtime ClientRealtime
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Realtime: ClientRealtime{
			HeartbeatInterval:    cfg.Realtime.HeartbeatInterval,
			ReconnectBaseDelay:   cfg.Realtime.ReconnectBaseDelay,
			MaxReconnectAttempts: cfg.Realtime.MaxReconnectAttempts,
			QueueCap:             cfg.Realtime.QueueCap,
			HandshakeTimeout:     cfg.Realtime.HandshakeTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{PollInterval: cfg.Workers.PollInterval},
	}

	return clientCfg, clientCfg.validate()
}
