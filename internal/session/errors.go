package session

import "errors"

var (
	ErrNoSession      = errors.New("no active session")
	ErrTokenMalformed = errors.New("session token malformed")
	ErrTokenExpired   = errors.New("session token expired")
)
