package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Client provides access to the auction REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	calm       *calmCache
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new auction API client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: slog.Default(),
		calm:   newCalmCache(5 * time.Minute),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCalmTokens enables or disables the calm-token cache and caps how long
// a token is held.
func WithCalmTokens(enabled bool, maxTTL time.Duration) ClientOption {
	return func(c *Client) {
		if enabled {
			c.calm = newCalmCache(maxTTL)
		} else {
			c.calm = nil
		}
	}
}
