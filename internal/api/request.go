package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Response is a completed HTTP exchange with the auction service. Status is
// part of the semantic payload and is classified downstream, never treated
// as a failure here.
type Response struct {
	Status int
	Body   []byte
}

// TransportError means the auction service could not be reached at all:
// DNS failure, refused connection, timeout. It is fatal to the single call
// only and is never conflated with an HTTP error status.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("auction service unreachable (%s): %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// send issues one GET request against the given endpoint path and returns
// the raw exchange. A calm token cached for this endpoint is replayed once.
func (c *Client) send(ctx context.Context, endpoint string, query url.Values) (*Response, error) {
	if query == nil {
		query = url.Values{}
	}
	if token, ok := c.calm.take(endpoint); ok {
		query.Set("calm_token", token)
	}

	fullURL := c.baseURL + endpoint
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	c.logger.Debug("auction api exchange",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode == http.StatusTooManyRequests {
		c.calm.store(endpoint, body)
	}

	return &Response{Status: resp.StatusCode, Body: body}, nil
}
