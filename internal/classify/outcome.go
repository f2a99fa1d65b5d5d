package classify

import "encoding/json"

// Outcome is one of the disjoint result variants produced by Classify.
// Callers switch on the concrete type; Render serializes any variant with
// an "outcome" discriminator for the tool surface.
type Outcome interface {
	Kind() string
}

// Snapshot carries a fresh auction info query result.
type Snapshot struct {
	AuctionSnapshot
}

func (Snapshot) Kind() string { return "snapshot" }

// PaymentRequired carries a quote for a bid awaiting payment.
type PaymentRequired struct {
	Quote
	Urgency     string `json:"urgency"`
	PaymentLink string `json:"payment_link,omitempty"`
}

func (PaymentRequired) Kind() string { return "payment_required" }

// ExistingBid carries the wallet's bid record plus the derived block for its
// lifecycle state.
type ExistingBid struct {
	Record
	Urgency        string `json:"urgency,omitempty"`
	PaymentLink    string `json:"payment_link,omitempty"`
	PriceFavorable *bool  `json:"price_favorable,omitempty"`
	Oversubscribed *bool  `json:"oversubscribed,omitempty"`
	FullAllocation *bool  `json:"full_allocation,omitempty"`
	Note           string `json:"note,omitempty"`
}

func (ExistingBid) Kind() string { return "existing_bid" }

// UnknownStatus is an existing bid whose embedded status the adapter does
// not recognize. The record passes through untouched so callers stay
// forward-compatible with new server-side states.
type UnknownStatus struct {
	Record
}

func (UnknownStatus) Kind() string { return "unknown_status" }

// NoBid means the wallet has not placed a bid yet. This is absence, not an
// error.
type NoBid struct {
	Message string `json:"message"`
}

func (NoBid) Kind() string { return "no_bid" }

// BidList carries the recent-bids listing, most recent first.
type BidList struct {
	Bids         []RecentBidEntry `json:"bids"`
	CurrentPrice string           `json:"current_price"`
}

func (BidList) Kind() string { return "bid_list" }

// Machine-readable DomainError codes.
const (
	CodeNoAuction     = "no_auction"
	CodeInvalidAmount = "invalid_amount"
	CodeAuctionClosed = "auction_closed"
	CodeBidNotFound   = "bid_not_found"
	CodeUpstream      = "upstream"
)

// DomainError is a well-formed error answer from the auction service. It is
// an outcome, not a transport failure: the remote was reachable and said no.
type DomainError struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	UpstreamStatus int    `json:"upstream_status"`
	Retryable      bool   `json:"retryable"`
	FinalPrice     string `json:"final_price,omitempty"`
	ClosedAt       string `json:"closed_at,omitempty"`
}

func (DomainError) Kind() string { return "error" }

// Retryable reports whether an upstream status is worth re-invoking the tool
// for. Nothing is retried automatically by this adapter.
func Retryable(status int) bool {
	return status == 429 || status >= 500
}

// Render serializes an outcome to JSON with an "outcome" discriminator field.
func Render(o Outcome) ([]byte, error) {
	raw, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["outcome"] = o.Kind()

	return json.MarshalIndent(m, "", "  ")
}
