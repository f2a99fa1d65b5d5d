package classify

import (
	"github.com/shopspring/decimal"
)

// Urgency levels derived from a live payment countdown.
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyNormal   = "normal"
)

// Countdown thresholds in seconds.
const (
	criticalThreshold = 60
	highThreshold     = 300
)

// refundFeeNote is attached to every refunded bid.
const refundFeeNote = "the network transaction fee was deducted from the refund"

// UrgencyFor maps a payment countdown to an urgency level.
func UrgencyFor(secondsRemaining int64) string {
	switch {
	case secondsRemaining < criticalThreshold:
		return UrgencyCritical
	case secondsRemaining < highThreshold:
		return UrgencyHigh
	default:
		return UrgencyNormal
	}
}

// decorateQuote builds the PaymentRequired outcome: countdown clamped to
// zero, urgency from the raw countdown, deeplink when the payment fields are
// present.
func decorateQuote(q Quote) PaymentRequired {
	urgency := UrgencyFor(q.SecondsRemaining)
	if q.SecondsRemaining < 0 {
		q.SecondsRemaining = 0
	}

	out := PaymentRequired{Quote: q, Urgency: urgency}
	if link, err := PaymentLink(q.PaymentRecipient, q.Amount, q.PaymentComment); err == nil {
		out.PaymentLink = link
	}
	return out
}

// decorateRecord attaches the derived block matching the record's embedded
// lifecycle state. Unrecognized states pass through as UnknownStatus.
func decorateRecord(r Record) Outcome {
	switch r.Status {
	case StatusPending:
		out := ExistingBid{Record: r}
		if r.SecondsRemaining != nil {
			out.Urgency = UrgencyFor(*r.SecondsRemaining)
		}
		if link, err := PaymentLink(r.PaymentRecipient, r.Amount, r.PaymentComment); err == nil {
			out.PaymentLink = link
		}
		return out

	case StatusCompleted:
		out := ExistingBid{Record: r}
		if favorable, ok := priceFavorable(r.CurrentPrice, r.LockedPrice); ok {
			out.PriceFavorable = &favorable
		}
		return out

	case StatusAllocated:
		oversubscribed := refundPositive(r.RefundAmount)
		full := !oversubscribed
		return ExistingBid{
			Record:         r,
			Oversubscribed: &oversubscribed,
			FullAllocation: &full,
		}

	case StatusRefunded:
		return ExistingBid{Record: r, Note: refundFeeNote}

	case StatusExpired:
		return ExistingBid{Record: r}

	default:
		return UnknownStatus{Record: r}
	}
}

// priceFavorable reports whether the auction price has risen above the
// locked price. The comparison is omitted (ok=false) when either side is
// missing or unparseable.
func priceFavorable(currentPrice, lockedPrice string) (favorable, ok bool) {
	current, err := decimal.NewFromString(currentPrice)
	if err != nil {
		return false, false
	}
	locked, err := decimal.NewFromString(lockedPrice)
	if err != nil {
		return false, false
	}
	return current.GreaterThan(locked), true
}

// refundPositive reports whether a refund amount is strictly positive. A
// missing or unparseable amount counts as zero.
func refundPositive(refund string) bool {
	d, err := decimal.NewFromString(refund)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// bidderDisplay privacy-truncates a wallet address for the public listing.
// Short values pass through untouched.
func bidderDisplay(addr string) string {
	runes := []rune(addr)
	if len(runes) <= 12 {
		return addr
	}
	return string(runes[:4]) + "…" + string(runes[len(runes)-4:])
}
