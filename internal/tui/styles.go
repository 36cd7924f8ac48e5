package tui

import "github.com/charmbracelet/lipgloss"

var (
	liveStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	connectingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	reconnectingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	offlineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	codeStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	faintStyle        = lipgloss.NewStyle().Faint(true)
)
