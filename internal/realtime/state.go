package realtime

// State is the connection lifecycle state of a [SyncClient].
type State int

const (
	// StateIdle means the client has never started or was stopped.
	StateIdle State = iota
	// StateConnecting means a transport dial is in flight.
	StateConnecting
	// StateAuthenticating means the transport is open and the auth
	// handshake has been sent but not yet answered.
	StateAuthenticating
	// StateReady means the handshake succeeded and frames flow both ways.
	StateReady
	// StateDegraded means the connection was lost and a reconnect attempt
	// is pending.
	StateDegraded
	// StateFailed means the client gave up: either the server rejected
	// authentication or reconnection attempts were exhausted.
	StateFailed
)

// String implements [fmt.Stringer] for logging and status display.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateAuthenticating:
		return "authenticating"
	case StateReady:
		return "ready"
	case StateDegraded:
		return "degraded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
