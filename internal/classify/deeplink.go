package classify

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// errIncompleteLink means the quote lacks one of the payment fields; the
// outcome is still valid, it just carries no deeplink.
var errIncompleteLink = errors.New("payment link requires recipient, amount and comment")

// PaymentLink builds a ton://transfer URI pre-filled with the payment
// parameters. The amount is converted from TON to nanotons (multiplied by
// 10^9 and truncated toward zero) before embedding.
func PaymentLink(recipient, amount, comment string) (string, error) {
	if recipient == "" || amount == "" || comment == "" {
		return "", errIncompleteLink
	}

	ton, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("parse payment amount %q: %w", amount, err)
	}
	nano := ton.Shift(9).Truncate(0)

	query := url.Values{}
	query.Set("amount", nano.String())
	query.Set("text", comment)

	u := url.URL{
		Scheme:   "ton",
		Host:     "transfer",
		Path:     "/" + recipient,
		RawQuery: query.Encode(),
	}
	return u.String(), nil
}
