// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, the realtime connection and the
// polling fallback into a single process lifecycle.
package client
