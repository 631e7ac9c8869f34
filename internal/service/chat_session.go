package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pubsub-chat/internal/adapter"
	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/workers"
	"github.com/MKhiriev/go-pubsub-chat/models"
)

type chatSession struct {
	bridge      MessageBridge
	interpreter CommandInterpreter
	group       *workers.Group

	shutdownOnce sync.Once
	done         chan struct{}

	logger *logger.Logger
}

// NewChatSession wires the bridge, publisher, interpreter and subscription
// job for cfg.App.Topic and starts the subscription job. Cancelling ctx has
// the same effect on background work as Shutdown, but only Shutdown closes
// Done.
func NewChatSession(ctx context.Context, cfg config.ClientConfig, factory adapter.Factory, logger *logger.Logger) ChatSession {
	bridge := NewMessageBridge()
	group := workers.NewGroup(ctx)

	publisher := NewChatPublisher(cfg.App.Topic, factory, bridge, group, logger)
	interpreter := NewCommandInterpreter(cfg.App.Sigil, bridge, publisher, logger)
	job := NewChatSubscriptionJob(cfg.App.Topic, factory, bridge, cfg.Workers, logger)

	group.Run(job)

	logger.Info().Str("topic", cfg.App.Topic).Msg("chat session started")

	return &chatSession{
		bridge:      bridge,
		interpreter: interpreter,
		group:       group,
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// SendInput implements ChatSession. It never blocks on the network.
func (s *chatSession) SendInput(text string) {
	if text == "" {
		return
	}
	s.interpreter.Interpret(text)
}

// PollIncoming implements ChatSession.
func (s *chatSession) PollIncoming() []models.Event {
	return s.bridge.DrainAll()
}

// Shutdown implements ChatSession. Concurrent callers block until the first
// call has finished waiting for background work.
func (s *chatSession) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.group.Stop()
		close(s.done)
		s.logger.Info().Msg("chat session shut down")
	})
}

// Done implements ChatSession.
func (s *chatSession) Done() <-chan struct{} {
	return s.done
}
