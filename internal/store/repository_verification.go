package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// verificationRepository is the SQLite-backed implementation of
// [VerificationRepository].
type verificationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewVerificationRepository(db *DB, logger *logger.Logger) VerificationRepository {
	return &verificationRepository{db: db, logger: logger}
}

// SaveVerification upserts one snapshot keyed by its server id.
func (r *verificationRepository) SaveVerification(ctx context.Context, v models.Verification) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveVerification,
		v.ID,
		v.ServiceName,
		v.PhoneNumber,
		string(v.Status),
		v.Code,
		v.Capability,
		v.CreatedAt,
		v.UpdatedAt,
		v.ExpiresAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.SaveVerification").
			Str("verification_id", v.ID).
			Msg("failed to upsert verification snapshot")
		return fmt.Errorf("failed to save verification (id=%s): %w", v.ID, err)
	}

	return nil
}

func (r *verificationRepository) GetVerification(ctx context.Context, verificationID string) (models.Verification, error) {
	log := logger.FromContext(ctx)

	var v models.Verification
	var expiresAt sql.NullTime

	row := r.db.QueryRowContext(ctx, getVerification, verificationID)
	err := row.Scan(
		&v.ID,
		&v.ServiceName,
		&v.PhoneNumber,
		&v.Status,
		&v.Code,
		&v.Capability,
		&v.CreatedAt,
		&v.UpdatedAt,
		&expiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Verification{}, fmt.Errorf("get verification (id=%s): %w", verificationID, ErrVerificationNotFound)
		}
		log.Err(err).
			Str("func", "verificationRepository.GetVerification").
			Str("verification_id", verificationID).
			Msg("failed to scan verification row")
		return models.Verification{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		v.ExpiresAt = &t
	}

	return v, nil
}

func (r *verificationRepository) ListVerifications(ctx context.Context, statuses ...models.VerificationStatus) ([]models.Verification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVerificationsQuery(statuses...)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.ListVerifications").
			Msg("failed to build listing query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.ListVerifications").
			Msg("failed to execute listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Verification

	for rows.Next() {
		var v models.Verification
		var expiresAt sql.NullTime

		scanErr := rows.Scan(
			&v.ID,
			&v.ServiceName,
			&v.PhoneNumber,
			&v.Status,
			&v.Code,
			&v.Capability,
			&v.CreatedAt,
			&v.UpdatedAt,
			&expiresAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "verificationRepository.ListVerifications").
				Msg("failed to scan verification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if expiresAt.Valid {
			t := expiresAt.Time
			v.ExpiresAt = &t
		}

		items = append(items, v)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "verificationRepository.ListVerifications").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating verification rows: %w", rowsErr)
	}

	return items, nil
}

func (r *verificationRepository) DeleteVerification(ctx context.Context, verificationID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteVerification, verificationID); err != nil {
		log.Err(err).
			Str("func", "verificationRepository.DeleteVerification").
			Str("verification_id", verificationID).
			Msg("failed to delete verification snapshot")
		return fmt.Errorf("failed to delete verification (id=%s): %w", verificationID, err)
	}

	return nil
}

func (r *verificationRepository) SaveMessage(ctx context.Context, msg models.SMSMessage) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveMessage,
		msg.VerificationID,
		msg.Sender,
		msg.Text,
		msg.ReceivedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.SaveMessage").
			Str("verification_id", msg.VerificationID).
			Msg("failed to insert message")
		return fmt.Errorf("failed to save message (verification_id=%s): %w", msg.VerificationID, err)
	}

	return nil
}

func (r *verificationRepository) GetMessages(ctx context.Context, verificationID string) ([]models.SMSMessage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getMessages, verificationID)
	if err != nil {
		log.Err(err).
			Str("func", "verificationRepository.GetMessages").
			Str("verification_id", verificationID).
			Msg("failed to execute messages query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.SMSMessage

	for rows.Next() {
		var msg models.SMSMessage

		scanErr := rows.Scan(&msg.VerificationID, &msg.Sender, &msg.Text, &msg.ReceivedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "verificationRepository.GetMessages").
				Str("verification_id", verificationID).
				Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, msg)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "verificationRepository.GetMessages").
			Str("verification_id", verificationID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating message rows: %w", rowsErr)
	}

	return items, nil
}
