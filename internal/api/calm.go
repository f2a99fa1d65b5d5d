package api

import (
	"encoding/json"
	"sync"
	"time"
)

// calmCache holds short-lived calm tokens the service issues under rate
// limiting, one per endpoint. A token is replayed on the next request to the
// same endpoint and discarded; expiry is checked on every read, never
// assumed fresh. A nil cache disables the mechanism.
type calmCache struct {
	mu      sync.Mutex
	maxTTL  time.Duration
	entries map[string]calmEntry
	now     func() time.Time
}

type calmEntry struct {
	token   string
	expires time.Time
}

// calmPayload is the rate-limit body shape carrying a token.
type calmPayload struct {
	CalmToken string `json:"calm_token"`
	CalmUntil string `json:"calm_until"`
}

func newCalmCache(maxTTL time.Duration) *calmCache {
	return &calmCache{
		maxTTL:  maxTTL,
		entries: make(map[string]calmEntry),
		now:     time.Now,
	}
}

// store parses a 429 body and caches its calm token, if any. Tokens without
// a parseable expiry get the cap as their lifetime.
func (c *calmCache) store(endpoint string, body []byte) {
	if c == nil {
		return
	}

	var payload calmPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.CalmToken == "" {
		return
	}

	now := c.now()
	expires := now.Add(c.maxTTL)
	if until, err := time.Parse(time.RFC3339, payload.CalmUntil); err == nil && until.Before(expires) {
		expires = until
	}
	if !expires.After(now) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[endpoint] = calmEntry{token: payload.CalmToken, expires: expires}
}

// take removes and returns the endpoint's token when one is cached and
// still valid.
func (c *calmCache) take(endpoint string) (string, bool) {
	if c == nil {
		return "", false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[endpoint]
	if !ok {
		return "", false
	}
	delete(c.entries, endpoint)

	if !entry.expires.After(c.now()) {
		return "", false
	}
	return entry.token, true
}
