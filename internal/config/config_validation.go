// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Cross-source invariants are enforced on the role-specific views
// ([ClientConfig], [ServerConfig]); the structured config itself accepts any
// merge result so that unused groups may stay empty.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	// Realtime and Workers groups fall back to package defaults when zero,
	// but negative values are always a configuration mistake.
	if cfg.Realtime.MaxReconnectAttempts < 0 || cfg.Realtime.QueueCap < 0 {
		return ErrInvalidRealtimeConfigs
	}
	if cfg.Realtime.HeartbeatInterval < 0 || cfg.Realtime.ReconnectBaseDelay < 0 {
		return ErrInvalidRealtimeConfigs
	}

	if cfg.Workers.PollInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
