// SPDX-License-Identifier: Apache-2.0

package devserver

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// Scripted lifecycle timings. Short enough that a developer sees the whole
// flow within seconds of creating a verification.
const (
	activateAfter = 2 * time.Second
	codeAfter     = 6 * time.Second
)

// scheduleLifecycle drives one verification through the scripted flow:
// a number gets allocated, then an SMS with the code arrives and the
// verification completes. Cancelled verifications drop out of the script at
// whatever stage they were in.
func (b *Backend) scheduleLifecycle(verificationID string) {
	b.after(activateAfter, func() { b.activate(verificationID) })
	b.after(codeAfter, func() { b.deliverCode(verificationID) })
}

func (b *Backend) activate(verificationID string) {
	b.mu.Lock()
	v, ok := b.verifications[verificationID]
	if !ok || v.Status != models.VerificationPending {
		b.mu.Unlock()
		return
	}

	v.Status = models.VerificationActive
	v.PhoneNumber = randomPhoneNumber()
	v.UpdatedAt = b.now()
	frame := statusFrame(*v)
	b.mu.Unlock()

	b.hub.PushEntity(verificationID, frame)
	b.logger.Info().Str("id", verificationID).Str("number", frame.PhoneNumber).Msg("number allocated")
}

func (b *Backend) deliverCode(verificationID string) {
	b.mu.Lock()
	v, ok := b.verifications[verificationID]
	if !ok || v.Status != models.VerificationActive {
		b.mu.Unlock()
		return
	}

	code := fmt.Sprintf("%06d", rand.IntN(1_000_000))
	now := b.now()

	sms := models.SMSMessage{
		VerificationID: verificationID,
		Sender:         v.ServiceName,
		Text:           fmt.Sprintf("Your %s code is %s", v.ServiceName, code),
		ReceivedAt:     now,
	}
	b.messages[verificationID] = append(b.messages[verificationID], sms)

	v.Status = models.VerificationCompleted
	v.Code = code
	v.UpdatedAt = now
	frame := statusFrame(*v)
	service := v.ServiceName
	b.mu.Unlock()

	// сначала SMS, затем финальный статус — как делает боевой сервер
	b.hub.PushEntity(verificationID, models.InboundMessage{
		Type:      models.MsgSMSReceived,
		EntityID:  verificationID,
		Sender:    sms.Sender,
		Text:      sms.Text,
		Timestamp: sms.ReceivedAt,
	})
	b.hub.PushEntity(verificationID, frame)
	b.hub.Broadcast(models.InboundMessage{
		Type:     models.MsgNotification,
		Title:    "Код получен",
		Message:  fmt.Sprintf("Верификация %s завершена", service),
		Severity: models.SeverityInfo,
	})

	b.logger.Info().Str("id", verificationID).Msg("code delivered")
}
