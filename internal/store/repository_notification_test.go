package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

func newTestNotificationRepo(t *testing.T) (*notificationRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &notificationRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveNotification(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	n := models.Notification{
		Title:    "Low balance",
		Message:  "Top up to keep numbers active",
		Severity: models.SeverityWarning,
	}

	// zero ReceivedAt is replaced with the insertion time
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(n.Title, n.Message, "warning", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveNotification(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotifications_NewestFirst(t *testing.T) {
	repo, mock, db := newTestNotificationRepo(t)
	defer db.Close()

	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"title", "message", "severity", "created_at"}).
		AddRow("Rental expiring", "rent-1 ends in 1h", "warning", newer).
		AddRow("Welcome", "account created", "info", older)

	mock.ExpectQuery("SELECT (.+) FROM notifications").
		WillReturnRows(rows)

	got, err := repo.ListNotifications(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Rental expiring", got[0].Title)
	assert.Equal(t, models.SeverityInfo, got[1].Severity)
}
