// SPDX-License-Identifier: Apache-2.0

package realtime

import (
	"context"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/realtime_mock.go -package=mock

// Transport is one established bidirectional message channel to the server.
// Implementations must allow ReadMessage to block in one goroutine while
// WriteMessage is called from others, and must unblock ReadMessage with an
// error once the channel dies or Close is called.
type Transport interface {
	// WriteMessage serializes and sends one client → server frame.
	WriteMessage(msg models.OutboundMessage) error

	// ReadMessage blocks until the next server → client frame arrives and
	// returns its raw payload. It returns an error when the transport is
	// closed, locally or remotely.
	ReadMessage() ([]byte, error)

	// Close tears the channel down. Safe to call more than once.
	Close() error
}

// Dialer opens a fresh Transport. The SyncClient calls it once per
// connection attempt.
type Dialer interface {
	Dial(ctx context.Context) (Transport, error)
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback if it has not fired yet. It reports
	// whether the cancellation was in time.
	Stop() bool
}

// Scheduler abstracts timer creation so tests can drive the reconnect
// backoff and heartbeat deterministically. The zero scheduler used in
// production is backed by [time.AfterFunc].
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// CredentialSource supplies the session credential presented during the
// authentication handshake.
type CredentialSource interface {
	// Credential returns the current session token in compact form.
	// It returns an error when no usable credential is available
	// (missing, malformed, or expired); the SyncClient treats that the
	// same as an authentication rejection and does not dial.
	Credential() (string, error)
}

// Callback consumes validated inbound frames for one subscribed entity.
// The frame passed the kind allow-list; its free-text fields are still
// untrusted and must be escaped by whoever renders them.
type Callback func(msg models.InboundMessage)
