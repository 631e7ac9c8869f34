package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing backend address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServerConfigs indicates invalid relay listen settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid chat settings (empty topic,
	// sigil that is not exactly one non-space character).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker timing
	// (for example, zero poll interval or retry max below retry initial).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidFlags indicates that command-line arguments could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
