// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/store"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

const eventBufferSize = 128

type updateService struct {
	verifications store.VerificationRepository
	notifications store.NotificationRepository
	log           *logger.Logger
	now           func() time.Time

	events chan Event
}

func NewUpdateService(verifications store.VerificationRepository, notifications store.NotificationRepository, log *logger.Logger) UpdateService {
	return &updateService{
		verifications: verifications,
		notifications: notifications,
		log:           log,
		now:           time.Now,
		events:        make(chan Event, eventBufferSize),
	}
}

func (u *updateService) Events() <-chan Event {
	return u.events
}

// HandleEntityFrame валидирует кадр и раскладывает его по типу. Кадры с
// неполными полями отбрасываются с логом, но никогда не роняют диспетчеризацию.
func (u *updateService) HandleEntityFrame(msg models.InboundMessage) {
	switch msg.Type {
	case models.MsgVerificationUpdate, models.MsgEntityUpdate:
		u.applyStatusFrame(msg)
	case models.MsgSMSReceived, models.MsgEntityEvent:
		u.applySMSFrame(msg)
	default:
		u.log.Debug().
			Str("func", "updateService.HandleEntityFrame").
			Str("type", string(msg.Type)).
			Msg("frame type is not entity-scoped, dropped")
	}
}

func (u *updateService) applyStatusFrame(msg models.InboundMessage) {
	if msg.EntityID == "" {
		u.log.Warn().
			Str("func", "updateService.applyStatusFrame").
			Msg("status frame without entity id, dropped")
		return
	}

	status := models.VerificationStatus(msg.Status)
	if !knownStatus(status) {
		u.log.Warn().
			Str("func", "updateService.applyStatusFrame").
			Str("verification_id", msg.EntityID).
			Str("status", msg.Status).
			Msg("unknown verification status, dropped")
		return
	}

	ctx := context.Background()

	v, err := u.verifications.GetVerification(ctx, msg.EntityID)
	if errors.Is(err, store.ErrVerificationNotFound) {
		v = models.Verification{ID: msg.EntityID, CreatedAt: u.now().UTC()}
	} else if err != nil {
		u.log.Warn().
			Str("func", "updateService.applyStatusFrame").
			Str("verification_id", msg.EntityID).
			Err(err).
			Msg("loading cached verification failed, building snapshot from frame")
		v = models.Verification{ID: msg.EntityID, CreatedAt: u.now().UTC()}
	}

	v.Status = status
	if msg.Code != "" {
		v.Code = sanitizeText(msg.Code)
	}
	if msg.PhoneNumber != "" {
		v.PhoneNumber = sanitizeText(msg.PhoneNumber)
	}
	v.UpdatedAt = u.now().UTC()

	if err := u.verifications.SaveVerification(ctx, v); err != nil {
		// снимок всё равно уходит в UI: кэш догонит на следующем обновлении
		u.log.Warn().
			Str("func", "updateService.applyStatusFrame").
			Str("verification_id", v.ID).
			Err(err).
			Msg("persisting verification snapshot failed")
	}

	u.emit(Event{Kind: EventVerification, Verification: v})
}

func (u *updateService) applySMSFrame(msg models.InboundMessage) {
	if msg.EntityID == "" {
		u.log.Warn().
			Str("func", "updateService.applySMSFrame").
			Msg("sms frame without entity id, dropped")
		return
	}

	sms := models.SMSMessage{
		VerificationID: msg.EntityID,
		Sender:         sanitizeText(msg.Sender),
		Text:           sanitizeText(msg.Text),
		ReceivedAt:     msg.Timestamp,
	}
	if sms.Sender == "" && sms.Text == "" {
		u.log.Warn().
			Str("func", "updateService.applySMSFrame").
			Str("verification_id", msg.EntityID).
			Msg("sms frame without sender and text, dropped")
		return
	}
	if sms.ReceivedAt.IsZero() {
		sms.ReceivedAt = u.now().UTC()
	}

	if err := u.verifications.SaveMessage(context.Background(), sms); err != nil {
		u.log.Warn().
			Str("func", "updateService.applySMSFrame").
			Str("verification_id", sms.VerificationID).
			Err(err).
			Msg("persisting sms failed")
	}

	u.emit(Event{Kind: EventSMS, SMS: sms})
}

func (u *updateService) HandleNotification(msg models.InboundMessage) {
	n := models.Notification{
		Title:      sanitizeText(msg.Title),
		Message:    sanitizeText(msg.Message),
		Severity:   msg.Severity,
		ReceivedAt: u.now().UTC(),
	}
	if n.Title == "" && n.Message == "" {
		u.log.Warn().
			Str("func", "updateService.HandleNotification").
			Msg("notification without title and message, dropped")
		return
	}
	switch n.Severity {
	case models.SeverityInfo, models.SeverityWarning, models.SeverityError:
	default:
		n.Severity = models.SeverityInfo
	}

	if err := u.notifications.SaveNotification(context.Background(), n); err != nil {
		u.log.Warn().
			Str("func", "updateService.HandleNotification").
			Err(err).
			Msg("persisting notification failed")
	}

	u.emit(Event{Kind: EventNotification, Notification: n})
}

func (u *updateService) ApplyVerification(ctx context.Context, v models.Verification) {
	if v.ID == "" {
		return
	}
	if v.UpdatedAt.IsZero() {
		v.UpdatedAt = u.now().UTC()
	}

	if err := u.verifications.SaveVerification(ctx, v); err != nil {
		u.log.Warn().
			Str("func", "updateService.ApplyVerification").
			Str("verification_id", v.ID).
			Err(err).
			Msg("persisting polled snapshot failed")
	}

	u.emit(Event{Kind: EventVerification, Verification: v})
}

// emit never blocks the dispatch path: when the UI lags behind the buffer,
// the event is dropped and the cache keeps the authoritative state.
func (u *updateService) emit(e Event) {
	select {
	case u.events <- e:
	default:
		u.log.Warn().
			Str("func", "updateService.emit").
			Str("kind", string(e.Kind)).
			Msg("event buffer full, display event dropped")
	}
}

func knownStatus(s models.VerificationStatus) bool {
	switch s {
	case models.VerificationPending, models.VerificationActive,
		models.VerificationCompleted, models.VerificationExpired,
		models.VerificationCancelled:
		return true
	}
	return false
}
