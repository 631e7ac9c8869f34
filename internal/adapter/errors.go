package adapter

import "errors"

// Sentinel transport errors. HTTP failures are wrapped around one of these by
// mapHTTPError together with the backend's message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrStreamClosed is returned by [Subscription.Next] when the backend
	// closes the subscription stream.
	ErrStreamClosed = errors.New("subscription stream closed")

	// ErrEmptyTopic is returned when a topic name is empty.
	ErrEmptyTopic = errors.New("empty topic")
)
