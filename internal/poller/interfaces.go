// SPDX-License-Identifier: Apache-2.0

// Package poller implements the polling fallback used when the realtime
// channel is unavailable: every tracked verification is refreshed over REST
// on a fixed interval and the resulting snapshots flow into the same consumer
// path the realtime updates use.
package poller

import (
	"context"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/poller_mock.go -package=mock

// VerificationFetcher fetches the current snapshot of one verification. The
// REST adapter satisfies it.
type VerificationFetcher interface {
	GetVerification(ctx context.Context, verificationID string) (models.Verification, error)
}

// TrackedSource reports which entity ids are currently being tracked. The
// realtime client satisfies it: its subscription set survives the outage, so
// the poller refreshes exactly what push delivery would have covered.
type TrackedSource interface {
	Subscriptions() []string
}

// SnapshotSink consumes refreshed snapshots. The update service satisfies it
// with the same handling it applies to realtime frames.
type SnapshotSink interface {
	ApplyVerification(ctx context.Context, v models.Verification)
}
