package service

import "errors"

var (
	ErrEmptyVerb       = errors.New("empty command verb")
	ErrNilHandler      = errors.New("nil command handler")
	ErrEmptyTopic      = errors.New("empty topic")
	ErrHubClosed       = errors.New("relay hub is closed")
	ErrPayloadTooLarge = errors.New("payload too large")
)
