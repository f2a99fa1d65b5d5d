// Package validate holds the pure input checks run before any request is
// issued upstream. A failed check never reaches the network.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Strictness selects how wallet addresses are checked.
type Strictness string

const (
	// Loose accepts any non-empty string after trimming.
	Loose Strictness = "loose"
	// Strict requires the TON user-friendly address form.
	Strict Strictness = "strict"
)

// tonAddressPattern matches the user-friendly base64url address form:
// a bounceable (EQ) or non-bounceable (UQ) tag followed by 46 base64url
// characters (36 bytes: workchain, account id, checksum).
var tonAddressPattern = regexp.MustCompile(`^(EQ|UQ)[A-Za-z0-9_-]{46}$`)

// InputError reports a locally rejected tool argument.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// Code returns the machine-readable error code for the tool surface.
func (e *InputError) Code() string { return "invalid_input" }

// Amount checks that x is a finite number within [min, max].
func Amount(x, min, max float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return &InputError{Field: "amount", Reason: "must be a finite number"}
	}
	if x < min || x > max {
		return &InputError{
			Field:  "amount",
			Reason: fmt.Sprintf("must be between %v and %v", min, max),
		}
	}
	return nil
}

// Wallet checks a wallet address according to the configured strictness.
func Wallet(s string, strictness Strictness) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return &InputError{Field: "wallet", Reason: "must be a non-empty string"}
	}
	if strictness == Strict && !tonAddressPattern.MatchString(trimmed) {
		return &InputError{Field: "wallet", Reason: "must be a TON address in user-friendly form"}
	}
	return nil
}

// BidID checks that a bid id is a non-empty string after trimming.
func BidID(s string) error {
	if strings.TrimSpace(s) == "" {
		return &InputError{Field: "bid_id", Reason: "must be a non-empty string"}
	}
	return nil
}

// ClampLimit normalizes a listing limit. A nil or non-positive limit falls
// back to def; anything above max is capped. Never fails.
func ClampLimit(n *int, def, max int) int {
	if n == nil || *n < 1 {
		return def
	}
	if *n > max {
		return max
	}
	return *n
}
