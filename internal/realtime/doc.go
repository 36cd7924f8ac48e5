// SPDX-License-Identifier: Apache-2.0

// Package realtime implements the client side of the Namaskah realtime
// channel: a single authenticated websocket connection multiplexing
// per-entity update subscriptions.
//
// The central type is [SyncClient]. It owns the connection lifecycle
// (Idle → Connecting → Authenticating → Ready → Degraded → Failed),
// reconnects with bounded exponential backoff after transport failure, queues
// outbound messages while the connection is not ready, and hands over to an
// external polling fallback when reconnection is exhausted.
//
// The transport, clock and credential source are injected through the
// [Dialer], [Scheduler] and [CredentialSource] interfaces so the full state
// machine is testable without a network or wall-clock delays. The production
// transport is gorilla/websocket ([NewWebsocketDialer]).
package realtime
