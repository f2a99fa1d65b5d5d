package config

import "time"

// Config is the root configuration for the auction tool adapter.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Bid    BidConfig    `yaml:"bid"`
	List   ListConfig   `yaml:"list"`
	Wallet WalletConfig `yaml:"wallet"`
	Calm   CalmConfig   `yaml:"calm"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig holds upstream auction API settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// BidConfig bounds the amount accepted by create_auction_bid.
type BidConfig struct {
	MinAmount float64 `yaml:"min_amount"`
	MaxAmount float64 `yaml:"max_amount"`
}

// ListConfig bounds the recent-bids listing.
type ListConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// Wallet validation strictness values.
const (
	WalletValidationLoose  = "loose"
	WalletValidationStrict = "strict"
)

// WalletConfig selects how wallet addresses are validated before a
// request is issued. Loose accepts any non-empty string; strict requires
// the TON user-friendly address form.
type WalletConfig struct {
	Validation string `yaml:"validation"`
}

// CalmConfig controls the process-wide calm-token cache.
type CalmConfig struct {
	Enabled *bool         `yaml:"enabled"`
	MaxTTL  time.Duration `yaml:"max_ttl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// CalmEnabled reports whether the calm-token cache is active.
func (c *Config) CalmEnabled() bool {
	return c.Calm.Enabled == nil || *c.Calm.Enabled
}
