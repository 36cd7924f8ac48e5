// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/realtime"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

func (m dashboardModel) View() string {
	if m.createStage != createStageNone {
		return m.viewCreateFlow()
	}
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m dashboardModel) viewList() string {
	var b strings.Builder

	if line := m.accountLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if len(m.verifications) == 0 {
		b.WriteString("Нет верификаций. n — создать новую.\n")
	} else {
		for i, v := range m.verifications {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			code := "      "
			if v.Code != "" {
				code = codeStyle.Render(v.Code)
			}
			b.WriteString(fmt.Sprintf("%s%-14s %-15s %-10s %s\n",
				cursor,
				fitText(v.ServiceName, 14),
				valueOrDash(v.PhoneNumber),
				statusBadge(v.Status),
				code,
			))
		}
	}

	if len(m.notifications) > 0 {
		b.WriteString("\nУведомления:\n")
		for _, n := range m.notifications {
			b.WriteString("  ")
			b.WriteString(renderNotification(n))
			b.WriteString("\n")
		}
	}

	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(
		m.header(),
		strings.TrimRight(b.String(), "\n"),
		"n новая │ enter детали │ c код │ r обновить │ ctrl+d отменить │ e продлить аренду │ l перелогин │ q выход",
	)
}

// accountLine сводит баланс и активную аренду в одну строку под шапкой.
// Пустая строка, пока данные аккаунта ещё не загружены.
func (m dashboardModel) accountLine() string {
	if m.balance.Amount == "" {
		return ""
	}

	line := "Баланс: " + m.balance.Amount + " " + m.balance.Currency
	if rental, ok := m.activeRental(); ok {
		line += fmt.Sprintf(" │ Аренда: %s (%s, осталось %s)",
			rental.PhoneNumber,
			rental.ServiceName,
			formatRemaining(rental.Remaining(time.Now())),
		)
	}
	return faintStyle.Render(line)
}

// formatRemaining печатает остаток аренды с точностью до минуты.
func formatRemaining(d time.Duration) string {
	if d <= 0 {
		return "0м"
	}
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	mins := int(d % time.Hour / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dм", mins)
	}
	return fmt.Sprintf("%dч%02dм", h, mins)
}

func (m dashboardModel) viewDetail() string {
	current, ok := m.current()
	if !ok {
		return m.viewList()
	}

	var b strings.Builder
	b.WriteString("Сервис   │ " + current.ServiceName + "\n")
	b.WriteString("Номер    │ " + valueOrDash(current.PhoneNumber) + "\n")
	b.WriteString("Статус   │ " + statusBadge(current.Status) + "\n")
	b.WriteString("Код      │ ")
	if current.Code != "" {
		b.WriteString(codeStyle.Render(current.Code))
	} else {
		b.WriteString("-")
	}
	b.WriteString("\n")
	if current.ExpiresAt != nil {
		b.WriteString("Истекает │ " + current.ExpiresAt.Local().Format("15:04:05") + "\n")
	}

	b.WriteString("\nСообщения:\n")
	if len(m.detailMessages) == 0 {
		b.WriteString("  -\n")
	} else {
		for _, sms := range m.detailMessages {
			b.WriteString(fmt.Sprintf("  %s  %-12s %s\n",
				sms.ReceivedAt.Local().Format("15:04:05"),
				fitText(valueOrDash(sms.Sender), 12),
				fitText(sms.Text, 60),
			))
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.header(), strings.TrimRight(b.String(), "\n"), "c код │ r обновить │ esc назад")
}

func (m dashboardModel) header() string {
	return "NAMASKAH  " + connectionIndicator(m.status.State())
}

// connectionIndicator maps the realtime lifecycle to the four user-facing
// connection states.
func connectionIndicator(s realtime.State) string {
	switch s {
	case realtime.StateReady:
		return liveStyle.Render("● Live")
	case realtime.StateConnecting, realtime.StateAuthenticating:
		return connectingStyle.Render("◌ Connecting")
	case realtime.StateDegraded:
		return reconnectingStyle.Render("◌ Reconnecting")
	default:
		return offlineStyle.Render("○ Offline")
	}
}

func statusBadge(s models.VerificationStatus) string {
	switch s {
	case models.VerificationActive:
		return liveStyle.Render(string(s))
	case models.VerificationPending:
		return warnStyle.Render(string(s))
	case models.VerificationCompleted:
		return string(s)
	default:
		return faintStyle.Render(string(s))
	}
}

func renderNotification(n models.Notification) string {
	line := n.Title
	if n.Message != "" {
		if line != "" {
			line += " — "
		}
		line += n.Message
	}
	line = fitText(line, 70)

	switch n.Severity {
	case models.SeverityError:
		return errStyle.Render(line)
	case models.SeverityWarning:
		return warnStyle.Render(line)
	default:
		return line
	}
}
