package models

import "time"

// WalletBalance is the user's current prepaid balance as reported by the
// server. Amounts are decimal strings to avoid float rounding on the client.
type WalletBalance struct {
	// Amount is the available balance, e.g. "12.50".
	Amount string `json:"amount"`

	// Currency is the ISO 4217 code, e.g. "USD".
	Currency string `json:"currency"`

	// UpdatedAt is the server timestamp of the last balance change.
	UpdatedAt time.Time `json:"updated_at"`
}
