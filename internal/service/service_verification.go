// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/adapter"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/store"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

type verificationService struct {
	adapter adapter.ServerAdapter
	store   store.VerificationRepository
	tracker Tracker
	updates UpdateService
	log     *logger.Logger
}

func NewVerificationService(serverAdapter adapter.ServerAdapter, verifications store.VerificationRepository, tracker Tracker, updates UpdateService, log *logger.Logger) VerificationService {
	return &verificationService{
		adapter: serverAdapter,
		store:   verifications,
		tracker: tracker,
		updates: updates,
		log:     log,
	}
}

func (s *verificationService) Create(ctx context.Context, req models.CreateVerificationRequest) (models.Verification, error) {
	v, err := s.adapter.CreateVerification(ctx, req)
	if err != nil {
		return models.Verification{}, fmt.Errorf("create verification on server: %w", err)
	}

	if err = s.store.SaveVerification(ctx, v); err != nil {
		// верификация уже создана на сервере, локальный кэш вторичен
		s.log.Warn().
			Str("func", "verificationService.Create").
			Str("verification_id", v.ID).
			Err(err).
			Msg("persisting created verification failed")
	}

	s.tracker.Subscribe(v.ID, s.updates.HandleEntityFrame)

	return v, nil
}

func (s *verificationService) Track(verificationID string) error {
	if verificationID == "" {
		return ErrEmptyVerificationID
	}
	s.tracker.Subscribe(verificationID, s.updates.HandleEntityFrame)
	return nil
}

func (s *verificationService) Refresh(ctx context.Context, verificationID string) (models.Verification, error) {
	if verificationID == "" {
		return models.Verification{}, ErrEmptyVerificationID
	}

	v, err := s.adapter.GetVerification(ctx, verificationID)
	if err != nil {
		return models.Verification{}, fmt.Errorf("refresh verification %s: %w", verificationID, err)
	}

	s.updates.ApplyVerification(ctx, v)

	return v, nil
}

func (s *verificationService) Messages(ctx context.Context, verificationID string) ([]models.SMSMessage, error) {
	if verificationID == "" {
		return nil, ErrEmptyVerificationID
	}

	messages, err := s.adapter.GetVerificationMessages(ctx, verificationID)
	if err != nil {
		return nil, fmt.Errorf("fetch messages for verification %s: %w", verificationID, err)
	}

	for _, m := range messages {
		if err = s.store.SaveMessage(ctx, m); err != nil {
			s.log.Warn().
				Str("func", "verificationService.Messages").
				Str("verification_id", verificationID).
				Err(err).
				Msg("persisting fetched sms failed")
			break
		}
	}

	return messages, nil
}

func (s *verificationService) Cancel(ctx context.Context, verificationID string) error {
	if verificationID == "" {
		return ErrEmptyVerificationID
	}

	if err := s.adapter.CancelVerification(ctx, verificationID); err != nil {
		return fmt.Errorf("cancel verification %s: %w", verificationID, err)
	}

	s.tracker.Unsubscribe(verificationID)

	v, err := s.store.GetVerification(ctx, verificationID)
	if err != nil {
		// в кэше её не было, отменять нечего
		return nil
	}
	v.Status = models.VerificationCancelled
	v.UpdatedAt = time.Now().UTC()
	if err = s.store.SaveVerification(ctx, v); err != nil {
		s.log.Warn().
			Str("func", "verificationService.Cancel").
			Str("verification_id", verificationID).
			Err(err).
			Msg("marking cached verification cancelled failed")
	}

	return nil
}

func (s *verificationService) List(ctx context.Context, statuses ...models.VerificationStatus) ([]models.Verification, error) {
	verifications, err := s.store.ListVerifications(ctx, statuses...)
	if err != nil {
		return nil, fmt.Errorf("list cached verifications: %w", err)
	}
	return verifications, nil
}
