package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pubsub-chat/internal/adapter"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/workers"
	"github.com/MKhiriev/go-pubsub-chat/models"
)

const sendFailedFormat = "Failed to send message: %s"

type chatPublisher struct {
	topic   string
	factory adapter.Factory
	bridge  MessageBridge
	group   *workers.Group

	logger *logger.Logger
}

// NewChatPublisher creates a publisher whose send tasks run on group, so
// stopping the group cancels and waits for them.
func NewChatPublisher(topic string, factory adapter.Factory, bridge MessageBridge, group *workers.Group, logger *logger.Logger) ChatPublisher {
	return &chatPublisher{
		topic:   topic,
		factory: factory,
		bridge:  bridge,
		group:   group,
		logger:  logger,
	}
}

// Send implements ChatPublisher. Each call gets its own goroutine and its own
// adapter. Messages are sent at most once; a failure is reported, not retried.
func (p *chatPublisher) Send(text string) {
	if !p.group.Go(func(ctx context.Context) { p.publish(ctx, text) }) {
		p.logger.Debug().Str("topic", p.topic).Msg("send dropped: session is shut down")
	}
}

func (p *chatPublisher) publish(ctx context.Context, text string) {
	err := p.tryPublish(ctx, text)
	if err == nil {
		p.logger.Debug().Str("topic", p.topic).Int("bytes", len(text)).Msg("message published")
		return
	}

	// Cancelled by shutdown: nobody is left to read the feedback.
	if ctx.Err() != nil {
		return
	}

	p.logger.Warn().Err(err).Str("topic", p.topic).Msg("publish failed")
	p.bridge.Push(models.NewCommandFeedback(fmt.Sprintf(sendFailedFormat, err)))
}

func (p *chatPublisher) tryPublish(ctx context.Context, text string) error {
	client, err := p.factory()
	if err != nil {
		return fmt.Errorf("open adapter: %w", err)
	}
	defer client.Close()

	return client.Publish(ctx, p.topic, []byte(text))
}
