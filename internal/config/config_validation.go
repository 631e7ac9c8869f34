// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"unicode"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Topic) == "" {
		return ErrInvalidAppConfigs
	}
	if cfg.Workers.RetryInitialInterval < 0 || cfg.Workers.RetryMaxInterval < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if unicode.IsSpace(cfg.App.Sigil) {
		return ErrInvalidAppConfigs
	}
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.RetryInitialInterval <= 0 ||
		cfg.Workers.RetryMaxInterval < cfg.Workers.RetryInitialInterval {
		return ErrInvalidWorkerConfigs
	}
	return nil
}

func (cfg *RelayConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
