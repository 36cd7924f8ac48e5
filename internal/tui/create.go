// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *dashboardModel) startCreateFlow() {
	m.createStage = createStageService
	m.capabilityIdx = 0
	m.createInput.SetValue("")
	m.createInput.Focus()
	m.errMsg = ""
	m.statusLine = ""
}

func (m *dashboardModel) resetCreateFlow() {
	m.createStage = createStageNone
	m.createInput.Blur()
}

func (m dashboardModel) updateCreateFlow(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.resetCreateFlow()
			return m, nil
		case "enter":
			switch m.createStage {
			case createStageService:
				if strings.TrimSpace(m.createInput.Value()) == "" {
					m.errMsg = "Название сервиса обязательно"
					return m, nil
				}
				m.errMsg = ""
				m.createStage = createStageCapability
				return m, nil
			case createStageCapability:
				if m.creating {
					return m, nil
				}
				m.creating = true
				serviceName := strings.TrimSpace(m.createInput.Value())
				capability := capabilityOptions[m.capabilityIdx]
				m.resetCreateFlow()
				return m, m.cmdCreate(serviceName, capability)
			}
		case "up", "k":
			if m.createStage == createStageCapability && m.capabilityIdx > 0 {
				m.capabilityIdx--
			}
			if m.createStage == createStageCapability {
				return m, nil
			}
		case "down", "j":
			if m.createStage == createStageCapability && m.capabilityIdx < len(capabilityOptions)-1 {
				m.capabilityIdx++
			}
			if m.createStage == createStageCapability {
				return m, nil
			}
		}
	}

	if m.createStage == createStageService {
		var cmd tea.Cmd
		m.createInput, cmd = m.createInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m dashboardModel) viewCreateFlow() string {
	var b strings.Builder

	switch m.createStage {
	case createStageService:
		b.WriteString("Сервис │ [")
		b.WriteString(m.createInput.View())
		b.WriteString("]\n")
	case createStageCapability:
		b.WriteString("Сервис │ ")
		b.WriteString(m.createInput.Value())
		b.WriteString("\n\nКанал получения кода:\n")
		for i, option := range capabilityOptions {
			cursor := "  "
			if i == m.capabilityIdx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(option)
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("НОВАЯ ВЕРИФИКАЦИЯ", strings.TrimRight(b.String(), "\n"), "enter: далее │ esc: отмена")
}
