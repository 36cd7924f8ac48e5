package models

import "time"

// MessageType tags every frame exchanged over the realtime channel.
type MessageType string

// Client → server message types.
const (
	MsgAuth        MessageType = "auth"
	MsgSubscribe   MessageType = "subscribe"
	MsgUnsubscribe MessageType = "unsubscribe"
	MsgPing        MessageType = "ping"
)

// Server → client message types. Anything outside this set is dropped by the
// realtime client before dispatch.
const (
	MsgAuthSuccess        MessageType = "auth_success"
	MsgAuthError          MessageType = "auth_error"
	MsgVerificationUpdate MessageType = "verification_update"
	MsgEntityUpdate       MessageType = "entity_update"
	MsgSMSReceived        MessageType = "sms_received"
	MsgEntityEvent        MessageType = "entity_event"
	MsgNotification       MessageType = "notification"
	MsgPong               MessageType = "pong"
)

// OutboundMessage is a client → server frame. Exactly one of the optional
// fields is meaningful per type: Token for auth, EntityID for
// subscribe/unsubscribe, none for ping.
type OutboundMessage struct {
	Type     MessageType `json:"type"`
	Token    string      `json:"token,omitempty"`
	EntityID string      `json:"entity_id,omitempty"`
}

// InboundMessage is a server → client frame. The set of populated fields
// depends on Type; consumers must not assume any optional field is well-typed
// beyond what the realtime client validates (the type tag and, for
// entity-scoped kinds, a non-empty EntityID).
//
// Text, Sender, Title and Message carry free text controlled by external
// parties (SMS senders in particular) and must be escaped before display.
type InboundMessage struct {
	Type MessageType `json:"type"`

	// EntityID identifies the verification or rental this frame concerns.
	// Set for verification_update / entity_update / sms_received /
	// entity_event.
	EntityID string `json:"entity_id,omitempty"`

	// Status is the new entity status for update kinds.
	Status string `json:"status,omitempty"`

	// Code is the extracted verification code, when the server has one.
	Code string `json:"code,omitempty"`

	// PhoneNumber is the allocated number, sent on allocation updates.
	PhoneNumber string `json:"phone_number,omitempty"`

	// Sender and Text describe an inbound SMS for sms_received /
	// entity_event kinds.
	Sender string `json:"sender,omitempty"`
	Text   string `json:"text,omitempty"`

	// Timestamp is the server-side event time for event kinds.
	Timestamp time.Time `json:"timestamp,omitzero"`

	// Title, Message and Severity describe a notification frame.
	Title    string               `json:"title,omitempty"`
	Message  string               `json:"message,omitempty"`
	Severity NotificationSeverity `json:"severity,omitempty"`

	// Reason is the human-readable cause attached to auth_error.
	Reason string `json:"reason,omitempty"`
}

var inboundKinds = map[MessageType]struct{}{
	MsgAuthSuccess:        {},
	MsgAuthError:          {},
	MsgVerificationUpdate: {},
	MsgEntityUpdate:       {},
	MsgSMSReceived:        {},
	MsgEntityEvent:        {},
	MsgNotification:       {},
	MsgPong:               {},
}

// KnownInboundKind reports whether t is on the server → client allow-list.
func KnownInboundKind(t MessageType) bool {
	_, ok := inboundKinds[t]
	return ok
}

// EntityScoped reports whether frames of type t are addressed to a single
// entity subscription (as opposed to session-wide frames such as
// notifications and handshake replies).
func EntityScoped(t MessageType) bool {
	switch t {
	case MsgVerificationUpdate, MsgEntityUpdate, MsgSMSReceived, MsgEntityEvent:
		return true
	default:
		return false
	}
}
