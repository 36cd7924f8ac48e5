// SPDX-License-Identifier: Apache-2.0

package service

import (
	"strings"
	"unicode"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// EventKind discriminates the display events the UI consumes.
type EventKind string

const (
	EventVerification EventKind = "verification"
	EventSMS          EventKind = "sms"
	EventNotification EventKind = "notification"
)

// Event is one display update. Exactly one payload field is set, selected by
// Kind.
type Event struct {
	Kind         EventKind
	Verification models.Verification
	SMS          models.SMSMessage
	Notification models.Notification
}

// sanitizeText strips control characters from free-text fields received from
// the network. The original protocol targets a browser DOM where escaping
// happens at render time; in a terminal the injection vector is ANSI control
// sequences, so they are removed on ingest, before the text is persisted or
// displayed.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
