// SPDX-License-Identifier: Apache-2.0

package devserver

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/utils"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// Demo account seeded into every backend instance. Printed at devserver
// startup so the credentials are easy to find.
const (
	DemoEmail    = "demo@namaskah.app"
	DemoPassword = "demo"
)

const verificationTTL = 20 * time.Minute

// Backend holds the whole simulated server state behind one mutex. All
// methods are safe for concurrent use by HTTP handlers and timers.
type Backend struct {
	hub    *Hub
	logger *logger.Logger
	now    func() time.Time
	ids    *utils.UUIDGenerator

	mu            sync.Mutex
	userID        string
	verifications map[string]*models.Verification
	messages      map[string][]models.SMSMessage
	rentals       map[string]*models.Rental
	wallet        models.WalletBalance
	timers        []*time.Timer
	closed        bool
}

func NewBackend(hub *Hub, logger *logger.Logger) *Backend {
	ids := utils.NewUUIDGenerator()
	b := &Backend{
		hub:           hub,
		logger:        logger,
		now:           time.Now,
		ids:           ids,
		userID:        ids.Generate(),
		verifications: make(map[string]*models.Verification),
		messages:      make(map[string][]models.SMSMessage),
		rentals:       make(map[string]*models.Rental),
	}
	b.seed()
	return b
}

// seed puts a believable starting state into the backend: a wallet balance
// and one active rental, so every client screen has data on first login.
func (b *Backend) seed() {
	now := b.now()

	b.wallet = models.WalletBalance{
		Amount:    "25.00",
		Currency:  "USD",
		UpdatedAt: now,
	}

	rental := &models.Rental{
		ID:          b.ids.Generate(),
		PhoneNumber: randomPhoneNumber(),
		ServiceName: "telegram",
		Status:      "active",
		StartedAt:   now.Add(-2 * time.Hour),
		ExpiresAt:   now.Add(22 * time.Hour),
	}
	b.rentals[rental.ID] = rental
}

// Authenticate checks the credentials against the seeded demo account and
// returns the account's user ID.
func (b *Backend) Authenticate(email, password string) (string, error) {
	if email != DemoEmail || password != DemoPassword {
		return "", ErrBadCredentials
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.userID, nil
}

// CreateVerification allocates a simulated verification in "pending" state
// and schedules its scripted lifecycle: number allocation a couple of seconds
// later, then an inbound SMS carrying the code.
func (b *Backend) CreateVerification(req models.CreateVerificationRequest) models.Verification {
	now := b.now()
	expires := now.Add(verificationTTL)

	capability := req.Capability
	if capability == "" {
		capability = "sms"
	}

	v := &models.Verification{
		ID:          b.ids.Generate(),
		ServiceName: req.ServiceName,
		Status:      models.VerificationPending,
		Capability:  capability,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   &expires,
	}

	b.mu.Lock()
	b.verifications[v.ID] = v
	b.mu.Unlock()

	b.scheduleLifecycle(v.ID)
	b.logger.Info().Str("id", v.ID).Str("service", v.ServiceName).Msg("verification created")

	return *v
}

// GetVerification returns a snapshot of the verification by ID.
func (b *Backend) GetVerification(verificationID string) (models.Verification, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.verifications[verificationID]
	if !ok {
		return models.Verification{}, ErrVerificationNotFound
	}
	return *v, nil
}

// Messages returns the captured inbound SMS for the verification, oldest
// first.
func (b *Backend) Messages(verificationID string) ([]models.SMSMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.verifications[verificationID]; !ok {
		return nil, ErrVerificationNotFound
	}

	items := b.messages[verificationID]
	out := make([]models.SMSMessage, len(items))
	copy(out, items)
	return out, nil
}

// CancelVerification moves a still-running verification to "cancelled" and
// pushes the final status frame. Terminal verifications cannot be cancelled.
func (b *Backend) CancelVerification(verificationID string) error {
	b.mu.Lock()
	v, ok := b.verifications[verificationID]
	if !ok {
		b.mu.Unlock()
		return ErrVerificationNotFound
	}
	if v.Status != models.VerificationPending && v.Status != models.VerificationActive {
		b.mu.Unlock()
		return ErrVerificationFinished
	}

	v.Status = models.VerificationCancelled
	v.UpdatedAt = b.now()
	frame := statusFrame(*v)
	b.mu.Unlock()

	b.hub.PushEntity(verificationID, frame)
	b.logger.Info().Str("id", verificationID).Msg("verification cancelled")
	return nil
}

// WalletBalance returns the balance of the acting user's wallet.
func (b *Backend) WalletBalance(userID string) (models.WalletBalance, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if userID != b.userID {
		return models.WalletBalance{}, ErrUnknownUser
	}
	return b.wallet, nil
}

// Rentals returns the acting user's rentals.
func (b *Backend) Rentals(userID string) ([]models.Rental, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if userID != b.userID {
		return nil, ErrUnknownUser
	}

	out := make([]models.Rental, 0, len(b.rentals))
	for _, r := range b.rentals {
		out = append(out, *r)
	}
	return out, nil
}

// ExtendRental prolongs the acting user's rental by the requested number of
// hours and broadcasts a notification about the extension.
func (b *Backend) ExtendRental(userID, rentalID string, hours int) (models.Rental, error) {
	b.mu.Lock()
	if userID != b.userID {
		b.mu.Unlock()
		return models.Rental{}, ErrUnknownUser
	}
	r, ok := b.rentals[rentalID]
	if !ok {
		b.mu.Unlock()
		return models.Rental{}, ErrRentalNotFound
	}

	r.ExpiresAt = r.ExpiresAt.Add(time.Duration(hours) * time.Hour)
	extended := *r
	b.mu.Unlock()

	b.hub.Broadcast(models.InboundMessage{
		Type:     models.MsgNotification,
		Title:    "Аренда продлена",
		Message:  fmt.Sprintf("Номер %s продлён на %d ч.", extended.PhoneNumber, hours),
		Severity: models.SeverityInfo,
	})

	return extended, nil
}

// Close stops all pending lifecycle timers. Safe to call more than once.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for _, t := range b.timers {
		t.Stop()
	}
	b.timers = nil
}

// after registers a lifecycle timer so Close can cancel it.
func (b *Backend) after(d time.Duration, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.timers = append(b.timers, time.AfterFunc(d, fn))
}

func statusFrame(v models.Verification) models.InboundMessage {
	return models.InboundMessage{
		Type:        models.MsgVerificationUpdate,
		EntityID:    v.ID,
		Status:      string(v.Status),
		Code:        v.Code,
		PhoneNumber: v.PhoneNumber,
		Timestamp:   v.UpdatedAt,
	}
}

func randomPhoneNumber() string {
	return fmt.Sprintf("+1555%07d", rand.IntN(10_000_000))
}
