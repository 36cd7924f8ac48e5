// SPDX-License-Identifier: Apache-2.0

// Package store implements the client-side snapshot cache on SQLite.
//
// The cache keeps the last known state of every tracked verification, its
// captured messages, recent notifications and the persisted session token, so
// the UI has something to render immediately after startup and the polling
// fallback has a baseline to diff against. The server remains the source of
// truth; every write here is a snapshot of something the server already said.
package store

import (
	"context"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the session token between runs. It satisfies
// session.TokenStore.
type SessionRepository interface {
	SaveSession(ctx context.Context, token models.Token) error
	LoadSession(ctx context.Context) (models.Token, error)
	DeleteSession(ctx context.Context) error
}

// VerificationRepository caches verification snapshots and their messages.
type VerificationRepository interface {
	// SaveVerification upserts a snapshot keyed by its server id.
	SaveVerification(ctx context.Context, v models.Verification) error
	GetVerification(ctx context.Context, verificationID string) (models.Verification, error)
	// ListVerifications returns cached snapshots, newest first, optionally
	// filtered by status.
	ListVerifications(ctx context.Context, statuses ...models.VerificationStatus) ([]models.Verification, error)
	DeleteVerification(ctx context.Context, verificationID string) error

	SaveMessage(ctx context.Context, msg models.SMSMessage) error
	// GetMessages returns the cached messages for one verification, oldest
	// first.
	GetMessages(ctx context.Context, verificationID string) ([]models.SMSMessage, error)
}

// NotificationRepository caches recent server notifications for the feed.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, n models.Notification) error
	// ListNotifications returns up to limit notifications, newest first.
	// limit <= 0 means no limit.
	ListNotifications(ctx context.Context, limit int) ([]models.Notification, error)
}
