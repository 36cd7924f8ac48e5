// SPDX-License-Identifier: Apache-2.0

package devserver

import "errors"

var (
	// ErrBadCredentials is returned by Authenticate when the email/password
	// pair does not match a seeded account.
	ErrBadCredentials = errors.New("invalid login/password")

	// ErrVerificationNotFound is returned when a verification ID is unknown
	// to the backend.
	ErrVerificationNotFound = errors.New("verification not found")

	// ErrVerificationFinished is returned by CancelVerification when the
	// verification has already reached a terminal state.
	ErrVerificationFinished = errors.New("verification already finished")

	// ErrRentalNotFound is returned when a rental ID is unknown to the
	// backend.
	ErrRentalNotFound = errors.New("rental not found")

	// ErrUnknownUser is returned by account methods when the acting user
	// is not the owner of the seeded account.
	ErrUnknownUser = errors.New("unknown user")
)
