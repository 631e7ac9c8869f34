package client

import "errors"

var (
	ErrNilConfig  = errors.New("client config is nil")
	ErrNilFactory = errors.New("adapter factory is nil")
)
