package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The session table holds at most one row.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

// SaveSession upserts the single session row.
func (r *sessionRepository) SaveSession(ctx context.Context, token models.Token) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveSession, token.UserID, token.SignedString, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Msg("failed to upsert session row")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// LoadSession reads the single session row. Returns an error wrapping
// [ErrSessionNotFound] when the table is empty.
func (r *sessionRepository) LoadSession(ctx context.Context) (models.Token, error) {
	log := logger.FromContext(ctx)

	var token models.Token
	row := r.db.QueryRowContext(ctx, loadSession)
	if err := row.Scan(&token.UserID, &token.SignedString); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Token{}, fmt.Errorf("load session: %w", ErrSessionNotFound)
		}
		log.Err(err).
			Str("func", "sessionRepository.LoadSession").
			Msg("failed to scan session row")
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// DeleteSession removes the session row, if any.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session row")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
