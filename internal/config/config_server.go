package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view consumed by the local development
// server (cmd/devserver).
type ServerConfig struct {
	// HTTPAddress is the TCP address the devserver listens on.
	HTTPAddress string
	// TokenSignKey is the secret key used to sign session JWTs.
	TokenSignKey string
	// TokenIssuer is the "iss" claim embedded in issued JWTs.
	TokenIssuer string
	// TokenDuration is the session JWT lifetime.
	TokenDuration time.Duration
	// RequestTimeout is the per-request handling budget.
	RequestTimeout time.Duration
}

// GetServerConfig builds and validates the devserver config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenIssuer:    cfg.Server.TokenIssuer,
		TokenDuration:  cfg.Server.TokenDuration,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return serverCfg, serverCfg.validate()
}
