package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// notificationRepository is the SQLite-backed implementation of
// [NotificationRepository].
type notificationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	return &notificationRepository{db: db, logger: logger}
}

func (r *notificationRepository) SaveNotification(ctx context.Context, n models.Notification) error {
	log := logger.FromContext(ctx)

	receivedAt := n.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, saveNotification, n.Title, n.Message, string(n.Severity), receivedAt)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.SaveNotification").
			Msg("failed to insert notification")
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}

func (r *notificationRepository) ListNotifications(ctx context.Context, limit int) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotificationsQuery(limit)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ListNotifications").
			Msg("failed to build feed query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ListNotifications").
			Msg("failed to execute feed query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Notification

	for rows.Next() {
		var n models.Notification

		scanErr := rows.Scan(&n.Title, &n.Message, &n.Severity, &n.ReceivedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "notificationRepository.ListNotifications").
				Msg("failed to scan notification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, n)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "notificationRepository.ListNotifications").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating notification rows: %w", rowsErr)
	}

	return items, nil
}
