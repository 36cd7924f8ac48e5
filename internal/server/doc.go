// Package server wires and runs the devserver's HTTP transport.
//
// It provides startup, signal handling, and graceful shutdown around the
// net/http server that serves the REST API and the realtime WebSocket
// endpoint.
package server
