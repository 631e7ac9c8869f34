package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pubsub-chat/internal/adapter"
	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/service"
	"github.com/MKhiriev/go-pubsub-chat/internal/tui"
	"github.com/MKhiriev/go-pubsub-chat/models"
)

// App is the chat client process: one session on one topic rendered by the
// terminal UI.
type App struct {
	cfg       config.ClientConfig
	factory   adapter.Factory
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, factory adapter.Factory, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if factory == nil {
		return nil, ErrNilFactory
	}

	return &App{cfg: *cfg, factory: factory, buildInfo: buildInfo, logger: logger}, nil
}

// Run opens the session and blocks until the window is closed or the
// process receives SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().
		Str("topic", a.cfg.App.Topic).
		Str("backend", a.cfg.Adapter.HTTPAddress).
		Msg("starting chat session")

	session := service.NewChatSession(ctx, a.cfg, a.factory, a.logger)
	defer session.Shutdown()

	ui := tui.New(session, a.cfg, a.buildInfo, a.logger)
	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("chat ui: %w", err)
	}

	<-session.Done()
	a.logger.Info().Msg("chat session closed")
	return nil
}
