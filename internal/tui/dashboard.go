// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/service"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

type createStage int

const (
	createStageNone createStage = iota
	createStageService
	createStageCapability
)

const notificationFeedSize = 5

// rentalExtendHours — шаг продления аренды по клавише e.
const rentalExtendHours = 1

var capabilityOptions = []string{"sms", "voice", "both"}

type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	status   StatusSource
	events   <-chan service.Event

	verifications []models.Verification
	idx           int
	loading       bool

	notifications []models.Notification

	balance models.WalletBalance
	rentals []models.Rental

	detail         bool
	detailMessages []models.SMSMessage

	createStage   createStage
	createInput   textinput.Model
	capabilityIdx int
	creating      bool

	statusLine string
	errMsg     string
	logout     bool
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, status StatusSource) dashboardModel {
	serviceInput := textinput.New()
	serviceInput.Placeholder = "telegram, whatsapp, ..."
	serviceInput.CharLimit = 40
	serviceInput.Width = 40

	return dashboardModel{
		ctx:         ctx,
		services:    services,
		status:      status,
		events:      services.Updates.Events(),
		loading:     true,
		createInput: serviceInput,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadVerifications(), m.cmdLoadAccount(), m.waitForEvent(), m.cmdStatusTick())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case displayEventMsg:
		if !msg.ok {
			// канал событий закрыт, приложение завершает работу
			return m, nil
		}
		m.applyEvent(msg.event)
		return m, m.waitForEvent()
	case statusTickMsg:
		// само состояние читается в View, тик нужен только для перерисовки
		return m, m.cmdStatusTick()
	case verificationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.verifications = msg.items
		m.clampIdx()
		return m, nil
	case createDoneMsg:
		m.creating = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.statusLine = "Верификация создана: " + msg.created.ServiceName
		m.upsertVerification(msg.created)
		return m, nil
	case cancelDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка отмены: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.statusLine = "Верификация отменена"
		m.loading = true
		return m, m.cmdLoadVerifications()
	case messagesLoadedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка загрузки сообщений: %v", msg.err)
			return m, nil
		}
		if current, ok := m.current(); ok && current.ID == msg.id {
			m.detailMessages = msg.items
		}
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.statusLine = "Обновлено"
		return m, nil
	case accountLoadedMsg:
		if msg.err != nil {
			// баланс и аренды не мешают работе со списком, строка просто
			// останется пустой до следующей загрузки
			return m, nil
		}
		m.balance = msg.balance
		m.rentals = msg.rentals
		return m, nil
	case extendDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.statusLine = "Аренда продлена до " + msg.extended.ExpiresAt.Local().Format("02.01 15:04")
		return m, m.cmdLoadAccount()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.createStage != createStageNone {
			return m.updateCreateFlow(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.createStage != createStageNone {
		return m.updateCreateFlow(msg)
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.verifications)-1 {
			m.idx++
		}
	case "n":
		m.startCreateFlow()
		return m, textinput.Blink
	case "enter":
		if current, ok := m.current(); ok {
			m.detail = true
			m.detailMessages = nil
			return m, m.cmdLoadMessages(current.ID)
		}
	case "c":
		m.copyCurrentCode()
	case "r":
		if current, ok := m.current(); ok {
			m.statusLine = "Обновление..."
			return m, m.cmdRefresh(current.ID)
		}
	case "ctrl+d":
		if current, ok := m.current(); ok {
			return m, m.cmdCancel(current.ID)
		}
	case "e":
		if rental, ok := m.activeRental(); ok {
			m.statusLine = "Продление аренды..."
			return m, m.cmdExtendRental(rental.ID)
		}
		m.statusLine = "Нет активной аренды"
	}

	return m, nil
}

func (m *dashboardModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "q":
		m.detail = false
		m.detailMessages = nil
	case "c":
		m.copyCurrentCode()
	case "r":
		if current, ok := m.current(); ok {
			return *m, tea.Batch(m.cmdRefresh(current.ID), m.cmdLoadMessages(current.ID))
		}
	}
	return *m, nil
}

func (m *dashboardModel) applyEvent(e service.Event) {
	switch e.Kind {
	case service.EventVerification:
		m.upsertVerification(e.Verification)
		if e.Verification.Code != "" {
			m.statusLine = "Получен код: " + e.Verification.Code
		}
	case service.EventSMS:
		if current, ok := m.current(); ok && m.detail && current.ID == e.SMS.VerificationID {
			m.detailMessages = append(m.detailMessages, e.SMS)
		}
		m.statusLine = "Новое SMS: " + fitText(e.SMS.Text, 40)
	case service.EventNotification:
		m.notifications = append([]models.Notification{e.Notification}, m.notifications...)
		if len(m.notifications) > notificationFeedSize {
			m.notifications = m.notifications[:notificationFeedSize]
		}
	}
}

func (m *dashboardModel) upsertVerification(v models.Verification) {
	for i := range m.verifications {
		if m.verifications[i].ID == v.ID {
			m.verifications[i] = v
			return
		}
	}
	m.verifications = append([]models.Verification{v}, m.verifications...)
	m.clampIdx()
}

func (m *dashboardModel) clampIdx() {
	if m.idx >= len(m.verifications) {
		m.idx = len(m.verifications) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) current() (models.Verification, bool) {
	if len(m.verifications) == 0 || m.idx < 0 || m.idx >= len(m.verifications) {
		return models.Verification{}, false
	}
	return m.verifications[m.idx], true
}

func (m dashboardModel) activeRental() (models.Rental, bool) {
	for _, r := range m.rentals {
		if r.Status == "active" {
			return r, true
		}
	}
	return models.Rental{}, false
}

func (m *dashboardModel) copyCurrentCode() {
	current, ok := m.current()
	if !ok || current.Code == "" {
		m.statusLine = "Нечего копировать"
		return
	}
	if err := clipboard.WriteAll(current.Code); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return
	}
	m.statusLine = "Код скопирован"
}

// ── команды ────────────────────────────────────────────────────────────

func (m dashboardModel) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		e, ok := <-events
		return displayEventMsg{event: e, ok: ok}
	}
}

func (m dashboardModel) cmdStatusTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}

func (m dashboardModel) cmdLoadVerifications() tea.Cmd {
	ctx, svc := m.ctx, m.services.Verifications
	return func() tea.Msg {
		items, err := svc.List(ctx)
		return verificationsLoadedMsg{items: items, err: err}
	}
}

func (m dashboardModel) cmdCreate(serviceName, capability string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Verifications
	return func() tea.Msg {
		created, err := svc.Create(ctx, models.CreateVerificationRequest{
			ServiceName: serviceName,
			Capability:  capability,
		})
		return createDoneMsg{created: created, err: err}
	}
}

func (m dashboardModel) cmdCancel(id string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Verifications
	return func() tea.Msg {
		return cancelDoneMsg{id: id, err: svc.Cancel(ctx, id)}
	}
}

func (m dashboardModel) cmdLoadMessages(id string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Verifications
	return func() tea.Msg {
		items, err := svc.Messages(ctx, id)
		return messagesLoadedMsg{id: id, items: items, err: err}
	}
}

func (m dashboardModel) cmdRefresh(id string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Verifications
	return func() tea.Msg {
		_, err := svc.Refresh(ctx, id)
		return refreshDoneMsg{err: err}
	}
}

func (m dashboardModel) cmdLoadAccount() tea.Cmd {
	ctx, svc := m.ctx, m.services.Account
	return func() tea.Msg {
		balance, err := svc.WalletBalance(ctx)
		if err != nil {
			return accountLoadedMsg{err: err}
		}
		rentals, err := svc.Rentals(ctx)
		return accountLoadedMsg{balance: balance, rentals: rentals, err: err}
	}
}

func (m dashboardModel) cmdExtendRental(id string) tea.Cmd {
	ctx, svc := m.ctx, m.services.Account
	return func() tea.Msg {
		extended, err := svc.ExtendRental(ctx, id, rentalExtendHours)
		return extendDoneMsg{extended: extended, err: err}
	}
}
