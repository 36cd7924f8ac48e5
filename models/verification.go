package models

import "time"

// VerificationStatus enumerates the lifecycle states a phone verification
// passes through on the server.
type VerificationStatus string

const (
	VerificationPending   VerificationStatus = "pending"
	VerificationActive    VerificationStatus = "active"
	VerificationCompleted VerificationStatus = "completed"
	VerificationExpired   VerificationStatus = "expired"
	VerificationCancelled VerificationStatus = "cancelled"
)

// Verification is the client-side snapshot of a phone-verification request.
// It mirrors the server representation; the client never mutates it locally
// except to fold in realtime updates.
type Verification struct {
	// ID is the server-assigned verification identifier (UUID string).
	ID string `json:"id"`

	// ServiceName is the external service the number was requested for
	// (e.g. "telegram", "whatsapp").
	ServiceName string `json:"service_name"`

	// PhoneNumber is the allocated number in E.164 form. Empty until the
	// server has completed allocation.
	PhoneNumber string `json:"phone_number,omitempty"`

	// Status is the current lifecycle state.
	Status VerificationStatus `json:"status"`

	// Code is the extracted verification code, if one has been received.
	Code string `json:"code,omitempty"`

	// Capability is "sms", "voice" or "both".
	Capability string `json:"capability,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// SMSMessage is a single inbound message delivered to a verification number.
type SMSMessage struct {
	VerificationID string    `json:"verification_id"`
	Sender         string    `json:"sender"`
	Text           string    `json:"text"`
	ReceivedAt     time.Time `json:"received_at"`
}
