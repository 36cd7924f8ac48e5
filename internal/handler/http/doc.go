// Package http implements the HTTP transport layer of the devserver.
//
// It exposes route wiring, REST handlers for the Namaskah client API, the
// realtime WebSocket endpoint, and middleware. Cross-cutting concerns such as
// authentication, request tracing and access logging are handled here before
// requests reach the simulation backend.
package http
