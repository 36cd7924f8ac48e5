// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/adapter"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/mock"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/service"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/store"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// newVerificationSvc — хелпер для создания сервиса с моками
func newVerificationSvc(t *testing.T) (
	service.VerificationService,
	*mock.MockServerAdapter,
	*mock.MockVerificationRepository,
	*mock.MockTracker,
	*mock.MockUpdateService,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockRepo := mock.NewMockVerificationRepository(ctrl)
	mockTracker := mock.NewMockTracker(ctrl)
	mockUpdates := mock.NewMockUpdateService(ctrl)

	svc := service.NewVerificationService(mockAdapter, mockRepo, mockTracker, mockUpdates, logger.Nop())
	return svc, mockAdapter, mockRepo, mockTracker, mockUpdates
}

func TestVerificationService_Create_Success(t *testing.T) {
	svc, mockAdapter, mockRepo, mockTracker, _ := newVerificationSvc(t)
	ctx := context.Background()

	req := models.CreateVerificationRequest{ServiceName: "telegram", Capability: "sms"}
	created := models.Verification{ID: "ver-1", ServiceName: "telegram", Status: models.VerificationPending}

	mockAdapter.EXPECT().CreateVerification(ctx, req).Return(created, nil)
	mockRepo.EXPECT().SaveVerification(ctx, created).Return(nil)
	mockTracker.EXPECT().Subscribe("ver-1", gomock.Any())

	got, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestVerificationService_Create_AdapterError(t *testing.T) {
	svc, mockAdapter, _, _, _ := newVerificationSvc(t)
	ctx := context.Background()

	req := models.CreateVerificationRequest{ServiceName: "telegram", Capability: "sms"}
	mockAdapter.EXPECT().CreateVerification(ctx, req).
		Return(models.Verification{}, errors.New("402: insufficient balance"))

	_, err := svc.Create(ctx, req)
	require.Error(t, err)
}

func TestVerificationService_Create_StoreFailureStillTracks(t *testing.T) {
	svc, mockAdapter, mockRepo, mockTracker, _ := newVerificationSvc(t)
	ctx := context.Background()

	req := models.CreateVerificationRequest{ServiceName: "whatsapp", Capability: "sms"}
	created := models.Verification{ID: "ver-2", ServiceName: "whatsapp"}

	mockAdapter.EXPECT().CreateVerification(ctx, req).Return(created, nil)
	mockRepo.EXPECT().SaveVerification(ctx, created).Return(errors.New("db error"))
	mockTracker.EXPECT().Subscribe("ver-2", gomock.Any())

	// ошибка локального кэша не должна срывать создание
	got, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ver-2", got.ID)
}

func TestVerificationService_Track(t *testing.T) {
	svc, _, _, mockTracker, _ := newVerificationSvc(t)

	mockTracker.EXPECT().Subscribe("ver-1", gomock.Any())
	require.NoError(t, svc.Track("ver-1"))
}

func TestVerificationService_Track_EmptyID(t *testing.T) {
	svc, _, _, _, _ := newVerificationSvc(t)

	err := svc.Track("")
	assert.ErrorIs(t, err, service.ErrEmptyVerificationID)
}

func TestVerificationService_Refresh_Success(t *testing.T) {
	svc, mockAdapter, _, _, mockUpdates := newVerificationSvc(t)
	ctx := context.Background()

	fetched := models.Verification{ID: "ver-1", Status: models.VerificationCompleted, Code: "123456"}
	mockAdapter.EXPECT().GetVerification(ctx, "ver-1").Return(fetched, nil)
	mockUpdates.EXPECT().ApplyVerification(ctx, fetched)

	got, err := svc.Refresh(ctx, "ver-1")
	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)
}

func TestVerificationService_Refresh_NotFound(t *testing.T) {
	svc, mockAdapter, _, _, _ := newVerificationSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().GetVerification(ctx, "ver-gone").
		Return(models.Verification{}, adapter.ErrNotFound)

	_, err := svc.Refresh(ctx, "ver-gone")
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestVerificationService_Refresh_EmptyID(t *testing.T) {
	svc, _, _, _, _ := newVerificationSvc(t)

	_, err := svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrEmptyVerificationID)
}

func TestVerificationService_Messages_Success(t *testing.T) {
	svc, mockAdapter, mockRepo, _, _ := newVerificationSvc(t)
	ctx := context.Background()

	messages := []models.SMSMessage{
		{VerificationID: "ver-1", Sender: "Telegram", Text: "code 111"},
		{VerificationID: "ver-1", Sender: "Telegram", Text: "code 222"},
	}
	mockAdapter.EXPECT().GetVerificationMessages(ctx, "ver-1").Return(messages, nil)
	mockRepo.EXPECT().SaveMessage(ctx, messages[0]).Return(nil)
	mockRepo.EXPECT().SaveMessage(ctx, messages[1]).Return(nil)

	got, err := svc.Messages(ctx, "ver-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestVerificationService_Messages_PersistFailureStillReturns(t *testing.T) {
	svc, mockAdapter, mockRepo, _, _ := newVerificationSvc(t)
	ctx := context.Background()

	messages := []models.SMSMessage{
		{VerificationID: "ver-1", Text: "code 111"},
		{VerificationID: "ver-1", Text: "code 222"},
	}
	mockAdapter.EXPECT().GetVerificationMessages(ctx, "ver-1").Return(messages, nil)
	mockRepo.EXPECT().SaveMessage(ctx, messages[0]).Return(errors.New("db error"))

	got, err := svc.Messages(ctx, "ver-1")
	require.NoError(t, err)
	assert.Len(t, got, 2, "сервер уже ответил, кэш вторичен")
}

func TestVerificationService_Cancel_Success(t *testing.T) {
	svc, mockAdapter, mockRepo, mockTracker, _ := newVerificationSvc(t)
	ctx := context.Background()

	cached := models.Verification{ID: "ver-1", Status: models.VerificationActive}

	mockAdapter.EXPECT().CancelVerification(ctx, "ver-1").Return(nil)
	mockTracker.EXPECT().Unsubscribe("ver-1")
	mockRepo.EXPECT().GetVerification(ctx, "ver-1").Return(cached, nil)

	var saved models.Verification
	mockRepo.EXPECT().SaveVerification(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, v models.Verification) error {
			saved = v
			return nil
		})

	require.NoError(t, svc.Cancel(ctx, "ver-1"))
	assert.Equal(t, models.VerificationCancelled, saved.Status)
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestVerificationService_Cancel_NotInCache(t *testing.T) {
	svc, mockAdapter, mockRepo, mockTracker, _ := newVerificationSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().CancelVerification(ctx, "ver-1").Return(nil)
	mockTracker.EXPECT().Unsubscribe("ver-1")
	mockRepo.EXPECT().GetVerification(ctx, "ver-1").
		Return(models.Verification{}, store.ErrVerificationNotFound)

	require.NoError(t, svc.Cancel(ctx, "ver-1"))
}

func TestVerificationService_Cancel_Conflict(t *testing.T) {
	svc, mockAdapter, _, _, _ := newVerificationSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().CancelVerification(ctx, "ver-1").Return(adapter.ErrConflict)

	err := svc.Cancel(ctx, "ver-1")
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestVerificationService_List_PassesStatusFilter(t *testing.T) {
	svc, _, mockRepo, _, _ := newVerificationSvc(t)
	ctx := context.Background()

	cached := []models.Verification{{ID: "ver-1", Status: models.VerificationActive}}
	mockRepo.EXPECT().ListVerifications(ctx, models.VerificationActive).Return(cached, nil)

	got, err := svc.List(ctx, models.VerificationActive)
	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestVerificationService_List_StoreError(t *testing.T) {
	svc, _, mockRepo, _, _ := newVerificationSvc(t)
	ctx := context.Background()

	mockRepo.EXPECT().ListVerifications(ctx).Return(nil, errors.New("db error"))

	_, err := svc.List(ctx)
	require.Error(t, err)
}
