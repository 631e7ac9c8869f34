// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// chat client and the local relay. It is populated by merging built-in
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds chat-level settings: topic, command sigil and log file.
	App App `envPrefix:"APP_"`

	// Adapter holds the address of the pubsub backend the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen settings of the local relay.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds timing of the background subscription and UI polling.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds chat-level settings.
type App struct {
	// Topic is the single pubsub topic used for sending and receiving.
	// Env: APP_TOPIC
	Topic string `env:"TOPIC"`

	// Sigil is the character that marks input as a local command.
	// Must be exactly one character.
	// Env: APP_SIGIL
	Sigil string `env:"SIGIL"`

	// LogFile is where the client writes its JSON log. Relative paths are
	// resolved next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the pubsub backend connection settings.
type Adapter struct {
	// HTTPAddress is the IPFS HTTP RPC API address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single publish call. Subscriptions are
	// long-lived streams and are not limited by it.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings of the local relay.
type Server struct {
	// HTTPAddress is the TCP address the relay listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the read-header timeout of the relay HTTP server.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds timing for background work.
type Workers struct {
	// PollInterval is how often the UI drains incoming events.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// RetryInitialInterval is the first delay after a failed subscription.
	// Env: WORKERS_RETRY_INITIAL_INTERVAL
	RetryInitialInterval time.Duration `env:"RETRY_INITIAL_INTERVAL"`

	// RetryMaxInterval caps the delay between subscription attempts.
	// Env: WORKERS_RETRY_MAX_INTERVAL
	RetryMaxInterval time.Duration `env:"RETRY_MAX_INTERVAL"`
}

// Built-in defaults. They match a kubo daemon running on loopback.
const (
	DefaultTopic                = "chat"
	DefaultSigil                = "/"
	DefaultLogFile              = "chat.log"
	DefaultAdapterAddress       = "127.0.0.1:5001"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultRelayAddress         = "127.0.0.1:5001"
	DefaultPollInterval         = 100 * time.Millisecond
	DefaultRetryInitialInterval = 100 * time.Millisecond
	DefaultRetryMaxInterval     = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Topic:   DefaultTopic,
			Sigil:   DefaultSigil,
			LogFile: DefaultLogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultRelayAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			PollInterval:         DefaultPollInterval,
			RetryInitialInterval: DefaultRetryInitialInterval,
			RetryMaxInterval:     DefaultRetryMaxInterval,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, usually os.Args[1:])
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
