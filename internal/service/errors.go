// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	ErrEmptyVerificationID = errors.New("verification id is empty")
	ErrEmptyRentalID       = errors.New("rental id is empty")
)
