package config

import (
	"fmt"
	"time"
)

// ClientApp holds chat-level settings of the client.
type ClientApp struct {
	// Topic is the single pubsub topic used for chatting.
	Topic string
	// Sigil marks input text as a local command.
	Sigil rune
	// LogFile is the client log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the IPFS HTTP RPC API address.
	HTTPAddress string
	// RequestTimeout bounds a single publish call.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PollInterval defines how often the UI drains the session.
	PollInterval time.Duration
	// RetryInitialInterval is the first subscription retry delay.
	RetryInitialInterval time.Duration
	// RetryMaxInterval caps subscription retry delays.
	RetryMaxInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// RelayConfig is the configuration view used by the local relay.
type RelayConfig struct {
	Server Server
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	sigil, err := SigilRune(cfg.App.Sigil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Topic:   cfg.App.Topic,
			Sigil:   sigil,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			PollInterval:         cfg.Workers.PollInterval,
			RetryInitialInterval: cfg.Workers.RetryInitialInterval,
			RetryMaxInterval:     cfg.Workers.RetryMaxInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetRelayConfig builds and validates the relay view of the configuration.
func GetRelayConfig(args []string) (*RelayConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	relayCfg := &RelayConfig{Server: cfg.Server}
	return relayCfg, relayCfg.validate()
}

// SigilRune converts the configured sigil string into the single rune the
// command interpreter compares against.
func SigilRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("sigil must be a single character, got %q", str)
	}
	return r[0], nil
}
