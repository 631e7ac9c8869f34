// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pubsub-chat/internal/adapter"
	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/models"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const waitFor = 2 * time.Second

func testClientConfig() config.ClientConfig {
	return config.ClientConfig{
		App: config.ClientApp{Topic: "chat", Sigil: '/'},
		Workers: config.ClientWorkers{
			PollInterval:         10 * time.Millisecond,
			RetryInitialInterval: time.Millisecond,
			RetryMaxInterval:     5 * time.Millisecond,
		},
	}
}

// fakeBackend is an in-memory pubsub backend. Every factory call returns a new
// adapter bound to it.
type fakeBackend struct {
	mu          sync.Mutex
	subErrs     []error
	published   []string
	publishErr  error
	publishGate chan struct{}

	adapters       atomic.Int32
	closedAdapters atomic.Int32
	subscribes     atomic.Int32
	publishing     atomic.Int32
	subscribed     chan *fakeSubscription
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{subscribed: make(chan *fakeSubscription, 32)}
}

func (b *fakeBackend) factory() (adapter.PubSubAdapter, error) {
	b.adapters.Add(1)
	return &fakeAdapter{backend: b}, nil
}

func (b *fakeBackend) failSubscribes(errs ...error) {
	b.mu.Lock()
	b.subErrs = append(b.subErrs, errs...)
	b.mu.Unlock()
}

func (b *fakeBackend) publishedTexts() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.published...)
}

func (b *fakeBackend) waitSubscribed(t *testing.T) *fakeSubscription {
	t.Helper()
	select {
	case sub := <-b.subscribed:
		return sub
	case <-time.After(waitFor):
		t.Fatal("no subscription was opened")
		return nil
	}
}

type fakeAdapter struct {
	backend *fakeBackend
}

func (a *fakeAdapter) Subscribe(_ context.Context, _ string) (adapter.Subscription, error) {
	b := a.backend
	b.subscribes.Add(1)

	b.mu.Lock()
	if len(b.subErrs) > 0 {
		err := b.subErrs[0]
		b.subErrs = b.subErrs[1:]
		b.mu.Unlock()
		return nil, err
	}
	b.mu.Unlock()

	sub := &fakeSubscription{
		msgs:   make(chan models.RawMessage, 32),
		closed: make(chan struct{}),
	}
	select {
	case b.subscribed <- sub:
	default:
	}
	return sub, nil
}

func (a *fakeAdapter) Close() error {
	a.backend.closedAdapters.Add(1)
	return nil
}

func (a *fakeAdapter) Publish(ctx context.Context, _ string, payload []byte) error {
	b := a.backend
	b.publishing.Add(1)
	defer b.publishing.Add(-1)

	if b.publishGate != nil {
		select {
		case <-b.publishGate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.publishErr != nil {
		return b.publishErr
	}
	b.published = append(b.published, string(payload))
	return nil
}

type fakeSubscription struct {
	msgs      chan models.RawMessage
	closed    chan struct{}
	closeOnce sync.Once
}

func (s *fakeSubscription) Next() (models.RawMessage, error) {
	select {
	case <-s.closed:
		return models.RawMessage{}, context.Canceled
	case msg, ok := <-s.msgs:
		if !ok {
			return models.RawMessage{}, adapter.ErrStreamClosed
		}
		return msg, nil
	}
}

func (s *fakeSubscription) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

func (s *fakeSubscription) deliver(data []byte) {
	s.msgs <- models.RawMessage{From: "peer", Data: data, HasData: true}
}

// spyPublisher records Send calls.
type spyPublisher struct {
	mu    sync.Mutex
	texts []string
}

func (p *spyPublisher) Send(text string) {
	p.mu.Lock()
	p.texts = append(p.texts, text)
	p.mu.Unlock()
}

func (p *spyPublisher) sent() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.texts...)
}

// collectEvents polls session until n events have arrived or the wait times
// out, and returns everything collected.
func collectEvents(t *testing.T, session ChatSession, n int) []models.Event {
	t.Helper()

	var events []models.Event
	deadline := time.Now().Add(waitFor)
	for len(events) < n && time.Now().Before(deadline) {
		events = append(events, session.PollIncoming()...)
		time.Sleep(5 * time.Millisecond)
	}
	return events
}
