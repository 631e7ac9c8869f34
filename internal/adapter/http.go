package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-pubsub-chat/internal/config"
	"github.com/MKhiriev/go-pubsub-chat/internal/logger"
	"github.com/MKhiriev/go-pubsub-chat/internal/utils"
	"github.com/MKhiriev/go-pubsub-chat/models"
)

const (
	subscribePath = "/api/v0/pubsub/sub"
	publishPath   = "/api/v0/pubsub/pub"
)

type ipfsPubSubAdapter struct {
	client *utils.HTTPClient

	cfg config.ClientAdapter

	logger *logger.Logger
}

// NewIPFSPubSubAdapter constructs an implementation of [PubSubAdapter] that
// talks to the pubsub endpoints of an IPFS HTTP RPC API (kubo) or of the local
// relay. Every call returns an adapter with its own connection pool.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewIPFSPubSubAdapter(cfg config.ClientAdapter, logger *logger.Logger) (PubSubAdapter, error) {
	client, err := utils.NewHTTPClient(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &ipfsPubSubAdapter{client: client, cfg: cfg, logger: logger}, nil
}

// NewIPFSFactory returns a [Factory] producing independent IPFS adapters for
// cfg.
func NewIPFSFactory(cfg config.ClientAdapter, logger *logger.Logger) Factory {
	return func() (PubSubAdapter, error) {
		return NewIPFSPubSubAdapter(cfg, logger)
	}
}

// Subscribe implements [PubSubAdapter]. It POSTs to /api/v0/pubsub/sub and
// keeps the response body open as a stream of newline-delimited JSON
// messages. The request has no deadline; it lives until ctx is cancelled or
// the subscription is closed.
func (a *ipfsPubSubAdapter) Subscribe(ctx context.Context, topic string) (Subscription, error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	streamCtx, cancel := context.WithCancel(ctx)
	resp, err := a.client.R().
		SetContext(streamCtx).
		SetDoNotParseResponse(true).
		SetQueryParam("arg", utils.EncodeMultibase([]byte(topic))).
		Post(subscribePath)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe request: %w", err)
	}

	body := resp.RawBody()
	if resp.IsError() {
		raw, _ := io.ReadAll(io.LimitReader(body, 64<<10))
		_ = body.Close()
		cancel()
		return nil, fmt.Errorf("subscribe: %w", mapHTTPError(resp.StatusCode(), raw))
	}

	a.logger.Debug().Str("topic", topic).Msg("subscribed")

	return &ipfsSubscription{
		body:    body,
		decoder: json.NewDecoder(body),
		cancel:  cancel,
		ctx:     streamCtx,
	}, nil
}

// Publish implements [PubSubAdapter]. The payload is sent as the "data" file
// part of a multipart form, which is what the RPC API expects.
func (a *ipfsPubSubAdapter) Publish(ctx context.Context, topic string, payload []byte) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	if timeout := a.cfg.RequestTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("arg", utils.EncodeMultibase([]byte(topic))).
		SetFileReader("data", "data", bytes.NewReader(payload)).
		Post(publishPath)
	if err != nil {
		return fmt.Errorf("publish request: %w", err)
	}

	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// Close implements [PubSubAdapter]. Every adapter owns its transport; its
// idle keep-alive connections are dropped here.
func (a *ipfsPubSubAdapter) Close() error {
	a.client.GetClient().CloseIdleConnections()
	return nil
}

type ipfsSubscription struct {
	body    io.ReadCloser
	decoder *json.Decoder

	ctx    context.Context
	cancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// Next implements [Subscription]. An item that is valid JSON but not a
// well-formed message, or whose data field is not valid multibase, is returned
// with Corrupted set instead of failing the stream.
func (s *ipfsSubscription) Next() (models.RawMessage, error) {
	var item json.RawMessage
	if err := s.decoder.Decode(&item); err != nil {
		if ctxErr := s.ctx.Err(); ctxErr != nil {
			return models.RawMessage{}, ctxErr
		}
		if errors.Is(err, io.EOF) {
			return models.RawMessage{}, ErrStreamClosed
		}
		return models.RawMessage{}, fmt.Errorf("read subscription stream: %w", err)
	}

	var msg models.PubSubMessage
	if err := json.Unmarshal(item, &msg); err != nil {
		return models.RawMessage{HasData: true, Corrupted: true}, nil
	}

	raw := models.RawMessage{From: msg.From}
	if msg.Data == nil {
		return raw, nil
	}

	raw.HasData = true
	data, err := utils.DecodeMultibase(*msg.Data)
	if err != nil {
		raw.Corrupted = true
		return raw, nil
	}
	raw.Data = data

	return raw, nil
}

// Close implements [Subscription].
func (s *ipfsSubscription) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}
