package models

import "time"

// Rental is a longer-lived number reservation, as opposed to a one-shot
// verification. The client only displays rentals and their remaining time;
// all rental accounting happens server-side.
type Rental struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	ServiceName string    `json:"service_name"`
	Status      string    `json:"status"`
	StartedAt   time.Time `json:"started_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Remaining returns the rental time left at now, never negative.
func (r Rental) Remaining(now time.Time) time.Duration {
	d := r.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
