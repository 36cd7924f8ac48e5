// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/realtime"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

//go:generate mockgen -source=interfaces_client.go -destination=../mock/service_mock.go -package=mock

// Tracker is the slice of the realtime client the verification service needs:
// announcing and withdrawing interest in entity ids.
type Tracker interface {
	Subscribe(entityID string, cb realtime.Callback)
	Unsubscribe(entityID string)
}

// VerificationService manages verification lifecycle: creation and commands go
// through the REST adapter, live updates arrive through a realtime
// subscription, and every snapshot lands in the local store so the UI keeps
// working when the connection is down.
type VerificationService interface {
	// Create requests a new verification number from the server, snapshots
	// it locally and subscribes to its realtime updates.
	Create(ctx context.Context, req models.CreateVerificationRequest) (models.Verification, error)

	// Track subscribes to realtime updates for an already existing
	// verification (after app restart or session resume).
	Track(verificationID string) error

	// Refresh fetches the current server-side snapshot over REST and
	// persists it. Used by manual refresh and by the polling fallback path.
	Refresh(ctx context.Context, verificationID string) (models.Verification, error)

	// Messages fetches all SMS received on the verification number and
	// persists them locally. Returned oldest first.
	Messages(ctx context.Context, verificationID string) ([]models.SMSMessage, error)

	// Cancel cancels the verification on the server, withdraws the realtime
	// subscription and marks the local snapshot cancelled.
	Cancel(ctx context.Context, verificationID string) error

	// List returns locally cached verifications, newest first, optionally
	// filtered by status. It never touches the network.
	List(ctx context.Context, statuses ...models.VerificationStatus) ([]models.Verification, error)
}

// AccountService exposes the billing side of the account: wallet balance and
// number rentals. It talks straight to the REST adapter, nothing is cached
// locally.
type AccountService interface {
	// WalletBalance fetches the current prepaid balance.
	WalletBalance(ctx context.Context) (models.WalletBalance, error)

	// Rentals fetches the user's number rentals.
	Rentals(ctx context.Context) ([]models.Rental, error)

	// ExtendRental prolongs a rental by the given number of hours.
	ExtendRental(ctx context.Context, rentalID string, hours int) (models.Rental, error)
}

// UpdateService is the single consumer of inbound update traffic, whether it
// arrived over the realtime channel or from the polling fallback. It validates
// payload fields, strips terminal control sequences from free-text fields,
// persists snapshots and forwards display events to the UI.
type UpdateService interface {
	// HandleEntityFrame consumes an entity-scoped inbound frame. It is the
	// callback registered with realtime subscriptions.
	HandleEntityFrame(msg models.InboundMessage)

	// HandleNotification consumes a session-wide notification frame. It is
	// wired to the realtime OnNotification hook.
	HandleNotification(msg models.InboundMessage)

	// ApplyVerification consumes a full snapshot fetched over REST and
	// emits the same display event a realtime update would have produced.
	ApplyVerification(ctx context.Context, v models.Verification)

	// Events exposes the ordered stream of display events for the UI.
	Events() <-chan Event
}
