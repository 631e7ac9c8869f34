// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the chat session engine: the subscription job
// that keeps a topic stream open, the bridge that hands received messages to
// the UI, the asynchronous publisher, the local command interpreter and the
// session that ties them together. It also holds the in-memory hub used by
// the local relay.
package service

import (
	"context"

	"github.com/MKhiriev/go-pubsub-chat/models"
)

// MessageBridge is an unbounded FIFO queue of events between background
// producers and exactly one consumer.
type MessageBridge interface {
	// Push appends event. It never blocks on the consumer.
	Push(event models.Event)

	// DrainAll removes and returns every queued event in push order. It
	// returns an empty slice when nothing is queued and never blocks.
	DrainAll() []models.Event
}

// ChatSubscriptionJob keeps a subscription to the chat topic open and forwards
// every received message into the bridge. Run returns only when ctx is
// cancelled.
type ChatSubscriptionJob interface {
	Run(ctx context.Context)
}

// ChatPublisher sends outgoing chat messages without blocking the caller.
type ChatPublisher interface {
	// Send starts publishing text in the background and returns immediately.
	// The outcome is reported only on failure, as a CommandFeedback event.
	Send(text string)
}

// CommandHandler executes one local command verb. It returns the events the
// command produces.
type CommandHandler func(cmd models.Command) []models.Event

// CommandInterpreter routes user input either to a local command or to the
// publisher.
type CommandInterpreter interface {
	// Interpret handles one line of input. Events produced by local commands
	// are pushed into the bridge; plain text is handed to the publisher.
	Interpret(text string)

	// Register binds verb to handler, replacing any previous binding.
	Register(verb string, handler CommandHandler) error
}

// ChatSession is the surface the UI collaborator talks to.
type ChatSession interface {
	// SendInput processes one line typed by the user. Empty input is ignored.
	SendInput(text string)

	// PollIncoming returns every event produced since the previous call.
	// It must be called from a single consumer goroutine.
	PollIncoming() []models.Event

	// Shutdown stops the subscription job and in-flight sends and waits for
	// them. It is idempotent.
	Shutdown()

	// Done is closed once Shutdown has completed.
	Done() <-chan struct{}
}

// RelayHub is an in-memory topic broker used by the local relay.
type RelayHub interface {
	// Subscribe registers a new subscriber to topic. The returned channel is
	// closed when ctx is cancelled or the hub is closed.
	Subscribe(ctx context.Context, topic string) (<-chan models.PubSubMessage, error)

	// Publish delivers payload to every current subscriber of topic.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Topics lists the topics that currently have subscribers, in no
	// particular order.
	Topics() []string

	// Close disconnects every subscriber.
	Close()
}
