package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://auction.tonlaunch.io/api/v1/auction"
	DefaultAPITimeout   = 30 * time.Second
	DefaultMinAmount    = 1
	DefaultMaxAmount    = 100
	DefaultListLimit    = 20
	DefaultMaxListLimit = 100
	DefaultCalmMaxTTL   = 5 * time.Minute
	DefaultLogLevel     = "info"
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Bid defaults
	if c.Bid.MinAmount == 0 {
		c.Bid.MinAmount = DefaultMinAmount
	}
	if c.Bid.MaxAmount == 0 {
		c.Bid.MaxAmount = DefaultMaxAmount
	}

	// List defaults
	if c.List.DefaultLimit == 0 {
		c.List.DefaultLimit = DefaultListLimit
	}
	if c.List.MaxLimit == 0 {
		c.List.MaxLimit = DefaultMaxListLimit
	}

	// Wallet defaults
	if c.Wallet.Validation == "" {
		c.Wallet.Validation = WalletValidationLoose
	}

	// Calm defaults
	if c.Calm.MaxTTL == 0 {
		c.Calm.MaxTTL = DefaultCalmMaxTTL
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
