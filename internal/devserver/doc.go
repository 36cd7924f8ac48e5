// Package devserver contains the in-memory simulation backend behind
// cmd/devserver. It fakes the Namaskah API surface the client talks to:
// a seeded demo account, verification allocation with a scripted lifecycle
// (pending → active → completed with a delivered code), rentals and a wallet
// balance. Every state change is also pushed to connected realtime sessions
// through the [Hub], so the client can be exercised end-to-end without the
// production backend.
package devserver
