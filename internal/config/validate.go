package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must be >= 0")
	}

	if c.Bid.MinAmount <= 0 {
		return errors.New("bid.min_amount must be > 0")
	}
	if c.Bid.MaxAmount < c.Bid.MinAmount {
		return fmt.Errorf("bid.max_amount (%v) cannot be below bid.min_amount (%v)",
			c.Bid.MaxAmount, c.Bid.MinAmount)
	}

	if c.List.DefaultLimit < 1 {
		return errors.New("list.default_limit must be >= 1")
	}
	if c.List.MaxLimit < c.List.DefaultLimit {
		return fmt.Errorf("list.max_limit (%d) cannot be below list.default_limit (%d)",
			c.List.MaxLimit, c.List.DefaultLimit)
	}

	switch c.Wallet.Validation {
	case WalletValidationLoose, WalletValidationStrict:
	default:
		return fmt.Errorf("wallet.validation must be %q or %q, got %q",
			WalletValidationLoose, WalletValidationStrict, c.Wallet.Validation)
	}

	if c.Calm.MaxTTL < 0 {
		return errors.New("calm.max_ttl must be >= 0")
	}

	return nil
}
