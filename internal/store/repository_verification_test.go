package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

func newTestVerificationRepo(t *testing.T) (*verificationRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &verificationRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var verificationColumns = []string{
	"id", "service_name", "phone_number", "status", "code",
	"capability", "created_at", "updated_at", "expires_at",
}

// ── SaveVerification ─────────────────────────────────────────────────────────

func TestSaveVerification_Upsert(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	now := time.Now()
	v := models.Verification{
		ID:          "ver-1",
		ServiceName: "telegram",
		PhoneNumber: "+15550001122",
		Status:      models.VerificationActive,
		Capability:  "sms",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectExec("INSERT INTO verifications").
		WithArgs(v.ID, v.ServiceName, v.PhoneNumber, "active", v.Code, v.Capability, v.CreatedAt, v.UpdatedAt, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveVerification(context.Background(), v))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVerification_ExecError(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO verifications").
		WillReturnError(errors.New("database is locked"))

	err := repo.SaveVerification(context.Background(), models.Verification{ID: "ver-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ver-1")
}

// ── GetVerification ──────────────────────────────────────────────────────────

func TestGetVerification_Found(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	now := time.Now()
	expires := now.Add(10 * time.Minute)
	rows := sqlmock.NewRows(verificationColumns).
		AddRow("ver-1", "telegram", "+15550001122", "active", "12345", "sms", now, now, expires)

	mock.ExpectQuery("SELECT (.+) FROM verifications").
		WithArgs("ver-1").
		WillReturnRows(rows)

	got, err := repo.GetVerification(context.Background(), "ver-1")

	require.NoError(t, err)
	assert.Equal(t, models.VerificationActive, got.Status)
	assert.Equal(t, "12345", got.Code)
	require.NotNil(t, got.ExpiresAt)
	assert.WithinDuration(t, expires, *got.ExpiresAt, time.Second)
}

func TestGetVerification_NotFound(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM verifications").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetVerification(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerificationNotFound)
}

func TestGetVerification_NullExpiry(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(verificationColumns).
		AddRow("ver-1", "telegram", "", "pending", "", "sms", now, now, nil)

	mock.ExpectQuery("SELECT (.+) FROM verifications").
		WithArgs("ver-1").
		WillReturnRows(rows)

	got, err := repo.GetVerification(context.Background(), "ver-1")

	require.NoError(t, err)
	assert.Nil(t, got.ExpiresAt)
}

// ── ListVerifications ────────────────────────────────────────────────────────

func TestListVerifications_All(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(verificationColumns).
		AddRow("ver-2", "whatsapp", "", "pending", "", "sms", now, now, nil).
		AddRow("ver-1", "telegram", "+15550001122", "completed", "12345", "sms", now, now, nil)

	mock.ExpectQuery("SELECT (.+) FROM verifications").
		WillReturnRows(rows)

	got, err := repo.ListVerifications(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ver-2", got[0].ID)
	assert.Equal(t, "ver-1", got[1].ID)
}

func TestListVerifications_StatusFilter(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(verificationColumns).
		AddRow("ver-1", "telegram", "+15550001122", "active", "", "sms", now, now, nil)

	mock.ExpectQuery("SELECT (.+) FROM verifications WHERE status").
		WithArgs("active").
		WillReturnRows(rows)

	got, err := repo.ListVerifications(context.Background(), models.VerificationActive)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.VerificationActive, got[0].Status)
}

func TestListVerifications_QueryError(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM verifications").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.ListVerifications(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── DeleteVerification ───────────────────────────────────────────────────────

func TestDeleteVerification(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM verifications").
		WithArgs("ver-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteVerification(context.Background(), "ver-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── messages ─────────────────────────────────────────────────────────────────

func TestSaveMessage(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	msg := models.SMSMessage{
		VerificationID: "ver-1",
		Sender:         "Telegram",
		Text:           "Your code is 12345",
		ReceivedAt:     time.Now(),
	}

	mock.ExpectExec("INSERT INTO messages").
		WithArgs(msg.VerificationID, msg.Sender, msg.Text, msg.ReceivedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveMessage(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMessages_OldestFirst(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	first := time.Now().Add(-time.Minute)
	second := time.Now()
	rows := sqlmock.NewRows([]string{"verification_id", "sender", "text", "received_at"}).
		AddRow("ver-1", "Telegram", "first", first).
		AddRow("ver-1", "Telegram", "second", second)

	mock.ExpectQuery("SELECT (.+) FROM messages").
		WithArgs("ver-1").
		WillReturnRows(rows)

	got, err := repo.GetMessages(context.Background(), "ver-1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
}
