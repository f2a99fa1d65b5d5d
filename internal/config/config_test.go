package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
api:
  base_url: https://auction.example.com/api/v1/auction
  timeout: 10s
bid:
  min_amount: 2
  max_amount: 50
wallet:
  validation: strict
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://auction.example.com/api/v1/auction" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "https://auction.example.com/api/v1/auction")
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, 10*time.Second)
	}
	if cfg.Bid.MinAmount != 2 {
		t.Errorf("Bid.MinAmount = %v, want 2", cfg.Bid.MinAmount)
	}
	if cfg.Wallet.Validation != WalletValidationStrict {
		t.Errorf("Wallet.Validation = %q, want %q", cfg.Wallet.Validation, WalletValidationStrict)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_AUCTION_URL", "https://env.example.com/api/v1/auction")

	yaml := `
api:
  base_url: ${TEST_AUCTION_URL}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.API.BaseURL != "https://env.example.com/api/v1/auction" {
		t.Errorf("API.BaseURL = %q, want env-substituted value", cfg.API.BaseURL)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "api:\n  base_url: https://x.example.com\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("API.Timeout = %v, want %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.Bid.MinAmount != DefaultMinAmount {
		t.Errorf("Bid.MinAmount = %v, want %v", cfg.Bid.MinAmount, float64(DefaultMinAmount))
	}
	if cfg.Bid.MaxAmount != DefaultMaxAmount {
		t.Errorf("Bid.MaxAmount = %v, want %v", cfg.Bid.MaxAmount, float64(DefaultMaxAmount))
	}
	if cfg.List.DefaultLimit != DefaultListLimit {
		t.Errorf("List.DefaultLimit = %d, want %d", cfg.List.DefaultLimit, DefaultListLimit)
	}
	if cfg.List.MaxLimit != DefaultMaxListLimit {
		t.Errorf("List.MaxLimit = %d, want %d", cfg.List.MaxLimit, DefaultMaxListLimit)
	}
	if cfg.Wallet.Validation != WalletValidationLoose {
		t.Errorf("Wallet.Validation = %q, want %q", cfg.Wallet.Validation, WalletValidationLoose)
	}
	if !cfg.CalmEnabled() {
		t.Error("CalmEnabled() = false, want true by default")
	}
	if cfg.Calm.MaxTTL != DefaultCalmMaxTTL {
		t.Errorf("Calm.MaxTTL = %v, want %v", cfg.Calm.MaxTTL, DefaultCalmMaxTTL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempFile(t, "api: [not: a: mapping\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestCalmEnabledExplicitFalse(t *testing.T) {
	path := writeTempFile(t, "calm:\n  enabled: false\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}
	if cfg.CalmEnabled() {
		t.Error("CalmEnabled() = true, want false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, true},
		{"zero min amount", func(c *Config) { c.Bid.MinAmount = -1 }, true},
		{"max below min", func(c *Config) { c.Bid.MinAmount = 10; c.Bid.MaxAmount = 5 }, true},
		{"zero default limit", func(c *Config) { c.List.DefaultLimit = -1 }, true},
		{"max limit below default", func(c *Config) { c.List.MaxLimit = 5 }, true},
		{"unknown wallet validation", func(c *Config) { c.Wallet.Validation = "paranoid" }, true},
		{"strict wallet validation", func(c *Config) { c.Wallet.Validation = WalletValidationStrict }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadAndValidate(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeTempFile(t, "api:\n  base_url: https://x.example.com\n")
		if _, err := LoadAndValidate(path); err != nil {
			t.Fatalf("LoadAndValidate failed: %v", err)
		}
	})

	t.Run("invalid after defaults", func(t *testing.T) {
		path := writeTempFile(t, "list:\n  max_limit: 5\n")
		if _, err := LoadAndValidate(path); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
