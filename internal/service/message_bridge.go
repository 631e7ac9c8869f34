package service

import (
	"sync"

	"github.com/MKhiriev/go-pubsub-chat/models"
)

type messageBridge struct {
	mu    sync.Mutex
	queue []models.Event
}

// NewMessageBridge creates an empty bridge.
func NewMessageBridge() MessageBridge {
	return &messageBridge{}
}

func (b *messageBridge) Push(event models.Event) {
	b.mu.Lock()
	b.queue = append(b.queue, event)
	b.mu.Unlock()
}

// DrainAll swaps the queue out under the lock so producers are held only for
// the swap, not for the consumer's processing.
func (b *messageBridge) DrainAll() []models.Event {
	b.mu.Lock()
	events := b.queue
	b.queue = nil
	b.mu.Unlock()

	if events == nil {
		return []models.Event{}
	}
	return events
}
