// SPDX-License-Identifier: Apache-2.0

// Package session owns the authenticated session credential shared by the REST
// adapter and the realtime client.
//
// A [Manager] holds the JWT issued at login, validates it structurally (the
// client never holds the signing key, so validation stops at well-formedness
// and the exp claim) and persists it through a [TokenStore] so a restart can
// resume the session without a fresh login.
package session

import (
	"context"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore persists the session token between runs. The sqlite-backed
// implementation lives in internal/store.
type TokenStore interface {
	// SaveSession stores token, replacing any previously saved session.
	SaveSession(ctx context.Context, token models.Token) error

	// LoadSession returns the saved session token. Returns an error wrapping
	// [ErrNoSession] when nothing has been saved.
	LoadSession(ctx context.Context) (models.Token, error)

	// DeleteSession removes the saved session, if any.
	DeleteSession(ctx context.Context) error
}
