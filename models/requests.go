package models

// CreateVerificationRequest asks the server to allocate a number for a
// service and start watching for inbound messages.
type CreateVerificationRequest struct {
	// ServiceName is the external service to verify against.
	ServiceName string `json:"service_name"`

	// Capability is "sms", "voice" or "both". Empty defaults to "sms"
	// server-side.
	Capability string `json:"capability,omitempty"`
}

// ExtendRentalRequest prolongs an active rental by the given number of hours.
type ExtendRentalRequest struct {
	Hours int `json:"hours"`
}
