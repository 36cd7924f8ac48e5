// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/Infradevandops/NAMASKAH-sub003/internal/adapter"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/config"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/logger"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/poller"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/realtime"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/service"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/session"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/store"
	"github.com/Infradevandops/NAMASKAH-sub003/internal/tui"
	"github.com/Infradevandops/NAMASKAH-sub003/models"
)

// App owns every long-lived client component and drives the login →
// dashboard → logout cycle.
type App struct {
	cfg *config.ClientConfig
	log *logger.Logger

	adapter  adapter.ServerAdapter
	storages *store.ClientStorages
	session  *session.Manager
	realtime *realtime.SyncClient
	poller   *poller.Worker
	services *service.ClientServices
	ui       *tui.TUI

	// runCtx is the lifetime of the current Run call; the polling fallback
	// inherits it so shutdown cancels any in-flight refresh.
	runCtx context.Context
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sessionMgr := session.NewManager(storages.Sessions, log)

	dialer, err := realtime.NewWebsocketDialer(serverAdapter.BaseURL())
	if err != nil {
		return nil, fmt.Errorf("derive realtime endpoint: %w", err)
	}

	app := &App{
		cfg:      cfg,
		log:      log,
		adapter:  serverAdapter,
		storages: storages,
		session:  sessionMgr,
		runCtx:   context.Background(),
	}

	// хуки замыкаются на app: poller и services подключаются ниже
	app.realtime = realtime.NewSyncClient(dialer, sessionMgr, realtime.Config{
		HeartbeatInterval:    cfg.Realtime.HeartbeatInterval,
		ReconnectBaseDelay:   cfg.Realtime.ReconnectBaseDelay,
		MaxReconnectAttempts: cfg.Realtime.MaxReconnectAttempts,
		QueueCap:             cfg.Realtime.QueueCap,
		HandshakeTimeout:     cfg.Realtime.HandshakeTimeout,
	}, realtime.Hooks{
		OnStateChange:  app.onStateChange,
		OnAuthFailure:  app.onAuthFailure,
		OnFallback:     app.onFallback,
		OnNotification: app.onNotification,
	}, log)

	app.services = service.NewClientServices(serverAdapter, storages, app.realtime, log)
	app.poller = poller.NewWorker(serverAdapter, app.realtime, app.services.Updates, log)

	ui, err := tui.New(app.services, serverAdapter, app.realtime, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}
	app.ui = ui

	return app, nil
}

// Run blocks until the user quits. Logout returns to the login form and
// starts a fresh session cycle.
func (a *App) Run() error {
	ctx := context.Background()
	a.runCtx = ctx

	for {
		if err := a.authenticate(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.trackCached(ctx)
		a.realtime.Start()

		logout, err := a.ui.Dashboard(ctx)

		a.realtime.Stop()
		a.poller.Stop()

		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if clearErr := a.session.Clear(ctx); clearErr != nil {
			a.log.Warn().Err(clearErr).Msg("clearing session on logout failed")
		}
		a.adapter.SetToken("")
	}
}

// authenticate resumes the persisted session or walks the login form.
func (a *App) authenticate(ctx context.Context) error {
	if err := a.session.Resume(ctx); err != nil {
		a.log.Debug().Err(err).Msg("no resumable session, login required")

		token, err := a.ui.LoginFlow(ctx)
		if err != nil {
			return err
		}
		if err = a.session.SetToken(ctx, token); err != nil {
			return fmt.Errorf("install session token: %w", err)
		}
	}

	token, ok := a.session.Token()
	if !ok {
		return session.ErrNoSession
	}
	a.adapter.SetToken(token.SignedString)

	return nil
}

// trackCached re-subscribes every unfinished cached verification so realtime
// updates keep flowing after a restart.
func (a *App) trackCached(ctx context.Context) {
	cached, err := a.services.Verifications.List(ctx,
		models.VerificationPending, models.VerificationActive)
	if err != nil {
		a.log.Warn().Err(err).Msg("listing cached verifications for tracking failed")
		return
	}
	for _, v := range cached {
		if err := a.services.Verifications.Track(v.ID); err != nil {
			a.log.Warn().Str("verification_id", v.ID).Err(err).Msg("tracking cached verification failed")
		}
	}
}

func (a *App) onStateChange(s realtime.State) {
	a.log.Info().Str("state", s.String()).Msg("realtime state changed")

	// realtime восстановился: опрос больше не нужен
	if s == realtime.StateReady {
		a.poller.Stop()
	}
}

func (a *App) onAuthFailure(reason string) {
	a.log.Warn().Str("reason", reason).Msg("realtime authentication rejected, session invalidated")

	// токен отвергнут сервером: чистим сохранённую сессию, чтобы следующий
	// цикл начался с формы входа
	if err := a.session.Clear(context.Background()); err != nil {
		a.log.Warn().Err(err).Msg("clearing rejected session failed")
	}
}

func (a *App) onFallback() {
	a.log.Warn().Msg("realtime exhausted, switching to polling fallback")
	a.poller.Start(a.runCtx, a.cfg.Workers.PollInterval)
}

func (a *App) onNotification(msg models.InboundMessage) {
	a.services.Updates.HandleNotification(msg)
}
