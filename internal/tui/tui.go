// Package tui renders the terminal dashboard: login form, connection-status
// indicator, verification list with received codes and the notification feed.
// It consumes display events from the update service and reads connection
// state from the realtime client; it never drives the realtime lifecycle
// itself, that belongs to the app layer.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/realtime"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/service"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// Authenticator is the slice of the REST adapter the login form needs.
type Authenticator interface {
	Login(ctx context.Context, user models.User) (models.Token, error)
}

// StatusSource reports the realtime connection state for the indicator.
// The realtime client satisfies it.
type StatusSource interface {
	State() realtime.State
}

type TUI struct {
	services *service.ClientServices
	auth     Authenticator
	status   StatusSource
}

func New(services *service.ClientServices, auth Authenticator, status StatusSource, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, auth: auth, status: status}, nil
}

// LoginFlow runs the login form until the user authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.Token, error) {
	finalModel, err := tea.NewProgram(newLoginModel(ctx, t.auth), tea.WithAltScreen()).Run()
	if err != nil {
		return models.Token{}, err
	}

	result, ok := finalModel.(*loginModel)
	if !ok {
		return models.Token{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Token{}, ErrUserQuit
	}
	return result.token, nil
}

// Dashboard runs the main screen until quit or logout.
func (t *TUI) Dashboard(ctx context.Context) (logout bool, err error) {
	model := newDashboardModel(ctx, t.services, t.status)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
