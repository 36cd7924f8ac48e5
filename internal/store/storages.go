package store

import (
	"context"
	"fmt"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/config"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Sessions persists the login token between runs.
	Sessions SessionRepository

	// Verifications caches verification snapshots and captured messages.
	Verifications VerificationRepository

	// Notifications caches the recent notification feed.
	Notifications NotificationRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories sharing the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Sessions:      NewSessionRepository(db, logger),
		Verifications: NewVerificationRepository(db, logger),
		Notifications: NewNotificationRepository(db, logger),
	}, nil
}
