package models

import "time"

// NotificationSeverity ranks server notifications for display purposes.
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeverityWarning NotificationSeverity = "warning"
	SeverityError   NotificationSeverity = "error"
)

// Notification is a user-facing message pushed by the server (low balance,
// rental expiring, service outage, ...). Title and Message are free text and
// must be treated as untrusted by any renderer.
type Notification struct {
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	Severity   NotificationSeverity `json:"severity"`
	ReceivedAt time.Time            `json:"received_at,omitempty"`
}
