package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/utils"
	"github.com/MKhiriev/go-pubsub-chat/models"
	"github.com/samber/lo"
)

const (
	// DefaultSubscriberBuffer is how many undelivered messages a relay
	// subscriber may hold before the oldest is dropped.
	DefaultSubscriberBuffer = 64

	// MaxRelayPayload is the largest message the relay accepts.
	MaxRelayPayload = 1 << 20
)

type relaySubscriber struct {
	ch chan models.PubSubMessage
}

type relayHub struct {
	peerID     string
	bufferSize int
	ids        *utils.UUIDGenerator

	mu     sync.Mutex
	topics map[string]map[*relaySubscriber]struct{}
	closed bool

	logger *logger.Logger
}

// NewRelayHub creates an in-memory broker. Every subscriber of a topic,
// including the publisher's own subscription, receives each message.
func NewRelayHub(bufferSize int, logger *logger.Logger) RelayHub {
	if bufferSize <= 0 {
		bufferSize = DefaultSubscriberBuffer
	}

	ids := utils.NewUUIDGenerator()
	return &relayHub{
		peerID:     "relay-" + ids.Generate(),
		bufferSize: bufferSize,
		ids:        ids,
		topics:     make(map[string]map[*relaySubscriber]struct{}),
		logger:     logger,
	}
}

// Subscribe implements RelayHub.
func (h *relayHub) Subscribe(ctx context.Context, topic string) (<-chan models.PubSubMessage, error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	sub := &relaySubscriber{ch: make(chan models.PubSubMessage, h.bufferSize)}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrHubClosed
	}
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[*relaySubscriber]struct{})
		h.topics[topic] = subs
	}
	subs[sub] = struct{}{}
	count := len(subs)
	h.mu.Unlock()

	context.AfterFunc(ctx, func() { h.unsubscribe(topic, sub) })

	h.logger.Debug().Str("topic", topic).Int("subscribers", count).Msg("subscriber joined")
	return sub.ch, nil
}

// Publish implements RelayHub. It never blocks on a slow subscriber: when a
// subscriber's buffer is full its oldest message is discarded.
func (h *relayHub) Publish(ctx context.Context, topic string, payload []byte) error {
	if topic == "" {
		return ErrEmptyTopic
	}
	if len(payload) > MaxRelayPayload {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data := utils.EncodeMultibase(payload)
	msg := models.PubSubMessage{
		From:     h.peerID,
		Data:     &data,
		Seqno:    utils.EncodeMultibase(h.ids.GenerateBytes()),
		TopicIDs: []string{utils.EncodeMultibase([]byte(topic))},
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}

	dropped := 0
	for sub := range h.topics[topic] {
		if !deliver(sub.ch, msg) {
			dropped++
		}
	}

	if dropped > 0 {
		h.logger.Warn().Str("topic", topic).Int("dropped", dropped).Msg("slow subscribers lost messages")
	}

	return nil
}

// Close implements RelayHub.
func (h *relayHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for topic, subs := range h.topics {
		for sub := range subs {
			close(sub.ch)
		}
		delete(h.topics, topic)
	}
}

// Topics implements RelayHub.
func (h *relayHub) Topics() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return lo.Keys(h.topics)
}

func (h *relayHub) unsubscribe(topic string, sub *relaySubscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[topic]
	if !ok {
		return
	}
	if _, ok = subs[sub]; !ok {
		return
	}

	delete(subs, sub)
	close(sub.ch)
	if len(subs) == 0 {
		delete(h.topics, topic)
	}

	h.logger.Debug().Str("topic", topic).Int("subscribers", len(subs)).Msg("subscriber left")
}

// deliver sends msg without blocking. It reports false when an older message
// had to be discarded to make room.
func deliver(ch chan models.PubSubMessage, msg models.PubSubMessage) bool {
	select {
	case ch <- msg:
		return true
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- msg:
	default:
	}
	return false
}
