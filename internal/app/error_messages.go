// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// Namaskah devserver handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any existing account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoServiceNameProvided is returned when a verification allocation
	// request arrives without a target service name.
	MsgNoServiceNameProvided = "no service name provided"

	// MsgVerificationNotFound is returned when a read or cancel targets a
	// verification ID the server does not know.
	MsgVerificationNotFound = "verification not found"

	// MsgVerificationFinished is returned when a cancel targets a
	// verification that already reached a terminal state.
	MsgVerificationFinished = "verification already finished"

	// MsgRentalNotFound is returned when an extension targets a rental ID
	// the server does not know.
	MsgRentalNotFound = "rental not found"

	// MsgInvalidExtensionHours is returned when a rental extension request
	// carries a non-positive hour count.
	MsgInvalidExtensionHours = "extension hours must be positive"

	// MsgUnknownUser is returned when an authenticated token names a user
	// the server does not know.
	MsgUnknownUser = "unknown user"
)
