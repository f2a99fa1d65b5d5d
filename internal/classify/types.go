package classify

// Endpoint identifies which auction API call produced a response. The same
// HTTP status classifies differently depending on the endpoint.
type Endpoint int

const (
	// EndpointInfo is GET /info.
	EndpointInfo Endpoint = iota
	// EndpointCreateBid is GET /bid?amount&wallet.
	EndpointCreateBid
	// EndpointBidByID is GET /bid?bid_id.
	EndpointBidByID
	// EndpointBidByWallet is GET /my-bid?wallet.
	EndpointBidByWallet
	// EndpointRecentBids is GET /bids.
	EndpointRecentBids
)

// String returns the endpoint name used in logs and error messages.
func (e Endpoint) String() string {
	switch e {
	case EndpointInfo:
		return "info"
	case EndpointCreateBid:
		return "create-bid"
	case EndpointBidByID:
		return "bid-by-id"
	case EndpointBidByWallet:
		return "bid-by-wallet"
	case EndpointRecentBids:
		return "recent-bids"
	default:
		return "unknown"
	}
}

// AuctionSnapshot is the upstream body of GET /info. Prices are decimal
// strings in TON, passed through unmodified.
type AuctionSnapshot struct {
	AuctionID       string  `json:"auction_id"`
	Status          string  `json:"status"` // active, closed, failed
	StartPrice      string  `json:"start_price"`
	CurrentPrice    string  `json:"current_price"`
	CeilingPrice    string  `json:"ceiling_price"`
	TickSize        string  `json:"tick_size"`
	MinBid          string  `json:"min_bid"`
	MaxBid          string  `json:"max_bid"`
	TargetRaised    string  `json:"target_raised"`
	TotalRaised     string  `json:"total_raised"`
	ProgressPercent float64 `json:"progress_percent"`
	Supply          string  `json:"supply"`
	TokensPerUnit   string  `json:"tokens_per_unit"`
}

// Quote is the upstream body of a 402 response: a new or still-pending bid
// awaiting payment.
type Quote struct {
	BidID               string `json:"bid_id"`
	Amount              string `json:"amount_ton"`
	LockedPrice         string `json:"locked_price"`
	EstimatedAllocation string `json:"estimated_allocation"`
	PaymentRecipient    string `json:"payment_recipient"`
	PaymentComment      string `json:"payment_comment"` // equals bid_id
	ExpiresAt           string `json:"expires_at"`
	SecondsRemaining    int64  `json:"seconds_remaining"`
}

// Record is the upstream body of a 200 response on the bid endpoints: the
// wallet's existing bid with its embedded lifecycle status.
type Record struct {
	BidID               string `json:"bid_id"`
	Wallet              string `json:"wallet"`
	Amount              string `json:"amount_ton"`
	LockedPrice         string `json:"locked_price"`
	Status              string `json:"status"`
	EstimatedAllocation string `json:"estimated_allocation,omitempty"`
	RefundAmount        string `json:"refund_ton,omitempty"`
	CurrentPrice        string `json:"current_price,omitempty"`
	PaymentRecipient    string `json:"payment_recipient,omitempty"`
	PaymentComment      string `json:"payment_comment,omitempty"`
	CreatedAt           string `json:"created_at,omitempty"`
	CompletedAt         string `json:"completed_at,omitempty"`
	SecondsRemaining    *int64 `json:"seconds_remaining,omitempty"`
}

// Bid lifecycle states the adapter recognizes. Anything else passes through
// as UnknownStatus.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusAllocated = "allocated"
	StatusRefunded  = "refunded"
	StatusExpired   = "expired"
)

// RecentBidEntry is one row of the recent-bids listing.
type RecentBidEntry struct {
	Bidder      string `json:"bidder"`
	Amount      string `json:"amount_ton"`
	LockedPrice string `json:"locked_price"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
}

// bidListResponse is the upstream body of GET /bids.
type bidListResponse struct {
	Bids         []RecentBidEntry `json:"bids"`
	CurrentPrice string           `json:"current_price"`
}

// closedResponse is the upstream body of a 410 response.
type closedResponse struct {
	FinalPrice string `json:"final_price"`
	ClosedAt   string `json:"closed_at"`
}
