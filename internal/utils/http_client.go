package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies the chat client to the pubsub backend.
const userAgent = "go-pubsub-chat"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient("127.0.0.1:5001")
//	resp, err := client.R().Post("/api/v0/pubsub/pub")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose requests are resolved against
// address. The address may be a bare "host:port" (http is assumed) or a full
// URL.
//
// Each call returns an independent client with its own connection pool, so
// goroutines that must not share connection state each create their own.
// No client-wide timeout is set: streaming requests run until their context
// is cancelled, and bounded requests pass a context with a deadline.
func NewHTTPClient(address string) (*HTTPClient, error) {
	baseURL, err := NormalizeBaseURL(address)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL turns "host:port" or a URL into a scheme-qualified base URL
// without a trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
