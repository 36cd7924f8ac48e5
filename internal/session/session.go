package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/utils"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// Manager holds the current session token. It implements the realtime
// client's CredentialSource, so a connection attempt always presents the
// freshest credential and fails fast on an expired one instead of burning a
// dial on a handshake the server will reject.
//
// All methods are safe for concurrent use.
type Manager struct {
	store TokenStore
	log   *logger.Logger

	// now is replaceable in tests
	now func() time.Time

	mu    sync.RWMutex
	token models.Token
}

// NewManager constructs a Manager with no active session. Call
// [Manager.Resume] to pick up a persisted session or [Manager.SetToken] after
// a fresh login.
func NewManager(store TokenStore, log *logger.Logger) *Manager {
	return &Manager{store: store, log: log, now: time.Now}
}

// SetToken installs token as the active session and persists it. A storage
// failure is logged but does not invalidate the in-memory session.
func (m *Manager) SetToken(ctx context.Context, token models.Token) error {
	if err := validate(token, m.now()); err != nil {
		return fmt.Errorf("refusing to install session token: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	if err := m.store.SaveSession(ctx, token); err != nil {
		m.log.Warn().Err(err).Msg("session token not persisted")
		return nil
	}
	m.log.Debug().Str("user_id", token.UserID).Msg("session token installed")
	return nil
}

// Resume loads the persisted session token, validates it, and installs it as
// the active session. Returns an error wrapping [ErrNoSession] when nothing
// was persisted and [ErrTokenExpired] when the persisted token is past its
// exp claim (the stale record is deleted in that case).
func (m *Manager) Resume(ctx context.Context) error {
	token, err := m.store.LoadSession(ctx)
	if err != nil {
		return fmt.Errorf("load persisted session: %w", err)
	}

	if err = validate(token, m.now()); err != nil {
		_ = m.store.DeleteSession(ctx)
		return fmt.Errorf("persisted session unusable: %w", err)
	}

	m.mu.Lock()
	m.token = token
	m.mu.Unlock()

	m.log.Debug().Str("user_id", token.UserID).Msg("session resumed")
	return nil
}

// Token returns the active session token and whether one is installed.
func (m *Manager) Token() (models.Token, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token.SignedString != ""
}

// UserID returns the account identifier of the active session, or an empty
// string when no session is installed.
func (m *Manager) UserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token.UserID
}

// Clear drops the active session and removes the persisted one.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.token = models.Token{}
	m.mu.Unlock()

	if err := m.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete persisted session: %w", err)
	}
	return nil
}

// Credential returns the compact token for the realtime auth handshake. It
// re-validates expiry at call time so a reconnect attempt made hours after
// login does not present a credential the server is guaranteed to reject.
func (m *Manager) Credential() (string, error) {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if err := validate(token, m.now()); err != nil {
		return "", err
	}
	return token.SignedString, nil
}

// validate checks that token is present, structurally sound, and not past its
// exp claim at now. Tokens without an exp claim are accepted.
func validate(token models.Token, now time.Time) error {
	if token.SignedString == "" {
		return ErrNoSession
	}

	inspected, err := utils.InspectJWTToken(token.SignedString)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}

	exp, err := inspected.Claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	if exp != nil && exp.Before(now) {
		return ErrTokenExpired
	}
	return nil
}
