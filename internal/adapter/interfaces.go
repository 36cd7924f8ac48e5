// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the Namaskah server.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]); the realtime channel lives separately in
// internal/realtime and shares only the session token with this package.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrPaymentRequired] for 402, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Namaskah
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login, or at startup when a persisted session is
	// resumed.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// BaseURL returns the normalized REST base URL the adapter talks to.
	// The realtime dialer derives its endpoint from it.
	BaseURL() string

	// Login authenticates the user. On success it stores the returned
	// bearer token via SetToken and returns the parsed session token.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// CreateVerification asks the server to allocate a number for a service
	// and start a verification. Returns [ErrPaymentRequired] (wrapped) when
	// the wallet balance does not cover the allocation.
	CreateVerification(ctx context.Context, req models.CreateVerificationRequest) (models.Verification, error)

	// GetVerification fetches the current snapshot of one verification.
	// Returns [ErrNotFound] (wrapped) for an unknown id. The polling
	// fallback calls this for every tracked entity.
	GetVerification(ctx context.Context, verificationID string) (models.Verification, error)

	// GetVerificationMessages lists every inbound SMS captured for the
	// verification so far, oldest first.
	GetVerificationMessages(ctx context.Context, verificationID string) ([]models.SMSMessage, error)

	// CancelVerification cancels an in-flight verification. Returns
	// [ErrConflict] (wrapped) when the verification has already completed.
	CancelVerification(ctx context.Context, verificationID string) error

	// WalletBalance returns the user's current prepaid balance.
	WalletBalance(ctx context.Context) (models.WalletBalance, error)

	// ListRentals lists the user's number rentals, active ones first.
	ListRentals(ctx context.Context) ([]models.Rental, error)

	// ExtendRental prolongs an active rental. Returns [ErrPaymentRequired]
	// (wrapped) when the balance does not cover the extension and
	// [ErrConflict] (wrapped) when the rental already ended.
	ExtendRental(ctx context.Context, rentalID string, req models.ExtendRentalRequest) (models.Rental, error)
}
