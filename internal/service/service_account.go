// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/adapter"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

type accountService struct {
	adapter adapter.ServerAdapter
	log     *logger.Logger
}

func NewAccountService(serverAdapter adapter.ServerAdapter, log *logger.Logger) AccountService {
	return &accountService{
		adapter: serverAdapter,
		log:     log,
	}
}

func (s *accountService) WalletBalance(ctx context.Context) (models.WalletBalance, error) {
	balance, err := s.adapter.WalletBalance(ctx)
	if err != nil {
		return models.WalletBalance{}, fmt.Errorf("fetch wallet balance: %w", err)
	}
	return balance, nil
}

func (s *accountService) Rentals(ctx context.Context) ([]models.Rental, error) {
	rentals, err := s.adapter.ListRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch rentals: %w", err)
	}
	return rentals, nil
}

func (s *accountService) ExtendRental(ctx context.Context, rentalID string, hours int) (models.Rental, error) {
	if rentalID == "" {
		return models.Rental{}, ErrEmptyRentalID
	}

	extended, err := s.adapter.ExtendRental(ctx, rentalID, models.ExtendRentalRequest{Hours: hours})
	if err != nil {
		return models.Rental{}, fmt.Errorf("extend rental %s: %w", rentalID, err)
	}

	s.log.Info().
		Str("func", "accountService.ExtendRental").
		Str("rental_id", rentalID).
		Int("hours", hours).
		Msg("rental extended")

	return extended, nil
}
