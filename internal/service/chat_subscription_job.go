package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-pubsub-chat/internal/adapter"
	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/models"
	"github.com/cenkalti/backoff/v5"
)

const (
	retryMultiplier          = 2
	retryRandomizationFactor = 0.5
)

type chatSubscriptionJob struct {
	topic   string
	factory adapter.Factory
	bridge  MessageBridge

	newBackOff func() backoff.BackOff

	logger *logger.Logger
}

// NewChatSubscriptionJob creates the job that streams topic into bridge.
// Retries after a failed subscribe or a broken stream are delayed by an
// exponential backoff bounded by cfg.RetryMaxInterval (plus jitter).
func NewChatSubscriptionJob(topic string, factory adapter.Factory, bridge MessageBridge, cfg config.ClientWorkers, logger *logger.Logger) ChatSubscriptionJob {
	return &chatSubscriptionJob{
		topic:   topic,
		factory: factory,
		bridge:  bridge,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = cfg.RetryInitialInterval
			b.MaxInterval = cfg.RetryMaxInterval
			b.Multiplier = retryMultiplier
			b.RandomizationFactor = retryRandomizationFactor
			return b
		},
		logger: logger,
	}
}

// Run implements ChatSubscriptionJob. Every attempt opens a fresh adapter.
// There is no terminal failure: the loop ends only when ctx is cancelled.
func (j *chatSubscriptionJob) Run(ctx context.Context) {
	retry := j.newBackOff()

	for attempt := 1; ; attempt++ {
		err := j.stream(ctx, retry)
		if ctx.Err() != nil {
			j.logger.Debug().Str("topic", j.topic).Msg("subscription job stopped")
			return
		}

		delay := retry.NextBackOff()
		j.logger.Warn().Err(err).
			Str("topic", j.topic).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("subscription failed, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			j.logger.Debug().Str("topic", j.topic).Msg("subscription job stopped")
			return
		case <-timer.C:
		}
	}
}

// stream runs one Subscribing → Streaming cycle and returns why it ended.
func (j *chatSubscriptionJob) stream(ctx context.Context, retry backoff.BackOff) error {
	client, err := j.factory()
	if err != nil {
		return fmt.Errorf("open adapter: %w", err)
	}
	defer client.Close()

	sub, err := client.Subscribe(ctx, j.topic)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer sub.Close()

	// Next has no context of its own; closing the subscription unblocks it.
	stop := context.AfterFunc(ctx, func() { _ = sub.Close() })
	defer stop()

	retry.Reset()
	j.logger.Info().Str("topic", j.topic).Msg("subscribed to topic")

	for {
		msg, err := sub.Next()
		if err != nil {
			if errors.Is(err, adapter.ErrStreamClosed) {
				return err
			}
			return fmt.Errorf("read message: %w", err)
		}

		if !msg.HasData {
			continue
		}
		j.bridge.Push(models.NewIncomingText(DecodeText(msg)))
	}
}

// DecodeText returns the payload as text, or [models.CorruptedMessageText]
// when the payload is not valid UTF-8 or could not be decoded by the
// transport.
func DecodeText(msg models.RawMessage) string {
	if msg.Corrupted || !utf8.Valid(msg.Data) {
		return models.CorruptedMessageText
	}
	return string(msg.Data)
}
