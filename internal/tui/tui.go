package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/service"
	"github.com/MKhiriev/go-pubsub-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of a chat session. It owns every piece of
// rendering state; the session is reached only through its public methods.
type TUI struct {
	session   service.ChatSession
	cfg       config.ClientConfig
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(session service.ChatSession, cfg config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{session: session, cfg: cfg, buildInfo: buildInfo, logger: logger}
}

// Run shows the chat window until the user quits or a ShutdownRequested
// event arrives, then shuts the session down.
func (t *TUI) Run(ctx context.Context) error {
	defer t.session.Shutdown()

	model := newChatModel(t.session, t.cfg, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("chat window closed by signal")
			return nil
		}
		return fmt.Errorf("run chat window: %w", err)
	}

	if result, ok := finalModel.(chatModel); ok {
		t.logger.Info().Bool("requested", result.shutdownRequested).Msg("chat window closed")
	}
	return nil
}
