// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to the
// pubsub backend.
//
// The primary abstraction is [PubSubAdapter], which decouples the chat session
// from the underlying protocol. The package ships an implementation of the
// IPFS HTTP RPC pubsub API ([NewIPFSPubSubAdapter]); the local relay in
// cmd/relay speaks the same API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrStreamClosed] for a finished
// subscription stream).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pubsub-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/pubsub_adapter_mock.go -package=mock

// PubSubAdapter defines transport-agnostic communication with the pubsub
// backend. An adapter is owned by a single goroutine; callers that work
// concurrently open one adapter each through a [Factory].
type PubSubAdapter interface {
	// Subscribe opens a message stream for topic. It returns once the backend
	// has accepted the subscription; messages are then read from the
	// returned [Subscription]. Cancelling ctx terminates the stream.
	Subscribe(ctx context.Context, topic string) (Subscription, error)

	// Publish sends payload to every subscriber of topic. A nil error means
	// the backend accepted the message, not that any peer received it.
	Publish(ctx context.Context, topic string, payload []byte) error

	// Close drops the adapter's idle connections. Subscriptions opened by the
	// adapter must be closed first. It is safe to call more than once.
	Close() error
}

// Subscription is an open, blocking stream of messages for one topic.
type Subscription interface {
	// Next blocks until the next message arrives. It returns
	// [ErrStreamClosed] when the backend ends the stream and a wrapped
	// transport error when the stream breaks.
	Next() (models.RawMessage, error)

	// Close releases the underlying connection. It is safe to call more
	// than once.
	Close() error
}

// Factory opens a fresh [PubSubAdapter]. Every subscription attempt and every
// publish task gets its own adapter so no connection state is shared between
// goroutines.
type Factory func() (PubSubAdapter, error)
