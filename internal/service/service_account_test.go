// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/adapter"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/mock"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/service"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// newAccountSvc — хелпер для создания сервиса с моками
func newAccountSvc(t *testing.T) (service.AccountService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	return service.NewAccountService(mockAdapter, logger.Nop()), mockAdapter
}

func TestAccountService_WalletBalance_Success(t *testing.T) {
	svc, mockAdapter := newAccountSvc(t)
	ctx := context.Background()

	balance := models.WalletBalance{Amount: "25.00", Currency: "USD"}
	mockAdapter.EXPECT().WalletBalance(ctx).Return(balance, nil)

	got, err := svc.WalletBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, balance, got)
}

func TestAccountService_WalletBalance_AdapterError(t *testing.T) {
	svc, mockAdapter := newAccountSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().WalletBalance(ctx).
		Return(models.WalletBalance{}, fmt.Errorf("%w: boom", adapter.ErrBadGateway))

	_, err := svc.WalletBalance(ctx)
	assert.ErrorIs(t, err, adapter.ErrBadGateway)
}

func TestAccountService_Rentals_Success(t *testing.T) {
	svc, mockAdapter := newAccountSvc(t)
	ctx := context.Background()

	rentals := []models.Rental{{ID: "rent-1", ServiceName: "telegram", Status: "active"}}
	mockAdapter.EXPECT().ListRentals(ctx).Return(rentals, nil)

	got, err := svc.Rentals(ctx)
	require.NoError(t, err)
	assert.Equal(t, rentals, got)
}

func TestAccountService_ExtendRental_Success(t *testing.T) {
	svc, mockAdapter := newAccountSvc(t)
	ctx := context.Background()

	extended := models.Rental{ID: "rent-1", ExpiresAt: time.Now().Add(24 * time.Hour)}
	mockAdapter.EXPECT().
		ExtendRental(ctx, "rent-1", models.ExtendRentalRequest{Hours: 6}).
		Return(extended, nil)

	got, err := svc.ExtendRental(ctx, "rent-1", 6)
	require.NoError(t, err)
	assert.Equal(t, extended, got)
}

func TestAccountService_ExtendRental_EmptyID(t *testing.T) {
	svc, _ := newAccountSvc(t)

	_, err := svc.ExtendRental(context.Background(), "", 6)
	assert.ErrorIs(t, err, service.ErrEmptyRentalID)
}

func TestAccountService_ExtendRental_PaymentRequired(t *testing.T) {
	svc, mockAdapter := newAccountSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		ExtendRental(ctx, "rent-1", models.ExtendRentalRequest{Hours: 6}).
		Return(models.Rental{}, fmt.Errorf("%w: balance too low", adapter.ErrPaymentRequired))

	_, err := svc.ExtendRental(ctx, "rent-1", 6)
	assert.ErrorIs(t, err, adapter.ErrPaymentRequired)
}
