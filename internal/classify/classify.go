package classify

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Classify maps a completed HTTP exchange to exactly one outcome variant.
// The error return is reserved for malformed bodies on statuses that
// require parsing; a well-formed upstream refusal is a DomainError outcome.
func Classify(endpoint Endpoint, status int, body []byte) (Outcome, error) {
	switch endpoint {
	case EndpointInfo:
		return classifyInfo(status, body)
	case EndpointCreateBid:
		return classifyCreateBid(status, body)
	case EndpointBidByID:
		return classifyBidLookup(status, body, false)
	case EndpointBidByWallet:
		return classifyBidLookup(status, body, true)
	case EndpointRecentBids:
		return classifyRecentBids(status, body)
	default:
		return nil, fmt.Errorf("classify: unknown endpoint %d", int(endpoint))
	}
}

func classifyInfo(status int, body []byte) (Outcome, error) {
	switch status {
	case http.StatusOK:
		var snap AuctionSnapshot
		if err := json.Unmarshal(body, &snap); err != nil {
			return nil, fmt.Errorf("parse info response: %w", err)
		}
		return Snapshot{AuctionSnapshot: snap}, nil
	case http.StatusNotFound:
		return DomainError{
			Code:           CodeNoAuction,
			Message:        "no auction is currently configured",
			UpstreamStatus: status,
		}, nil
	default:
		return upstreamError(status), nil
	}
}

func classifyCreateBid(status int, body []byte) (Outcome, error) {
	switch status {
	case http.StatusPaymentRequired:
		return paymentRequired(body)
	case http.StatusOK:
		return existingBid(body)
	case http.StatusUnprocessableEntity:
		return DomainError{
			Code:           CodeInvalidAmount,
			Message:        "the auction rejected the bid amount",
			UpstreamStatus: status,
		}, nil
	case http.StatusGone:
		return auctionClosed(status, body), nil
	default:
		return upstreamError(status), nil
	}
}

// classifyBidLookup covers both bid lookups. A 404 means different things on
// each: absence of a bid on the wallet lookup, a missing record on the id
// lookup.
func classifyBidLookup(status int, body []byte, byWallet bool) (Outcome, error) {
	switch status {
	case http.StatusPaymentRequired:
		return paymentRequired(body)
	case http.StatusOK:
		return existingBid(body)
	case http.StatusGone:
		return auctionClosed(status, body), nil
	case http.StatusNotFound:
		if byWallet {
			return NoBid{Message: "no bid placed yet for this wallet"}, nil
		}
		return DomainError{
			Code:           CodeBidNotFound,
			Message:        "no bid exists with this id",
			UpstreamStatus: status,
		}, nil
	default:
		return upstreamError(status), nil
	}
}

func classifyRecentBids(status int, body []byte) (Outcome, error) {
	if status != http.StatusOK {
		return upstreamError(status), nil
	}

	var resp bidListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse recent-bids response: %w", err)
	}

	bids := make([]RecentBidEntry, 0, len(resp.Bids))
	for _, b := range resp.Bids {
		b.Bidder = bidderDisplay(b.Bidder)
		bids = append(bids, b)
	}

	return BidList{Bids: bids, CurrentPrice: resp.CurrentPrice}, nil
}

func paymentRequired(body []byte) (Outcome, error) {
	var q Quote
	if err := json.Unmarshal(body, &q); err != nil {
		return nil, fmt.Errorf("parse quote response: %w", err)
	}
	return decorateQuote(q), nil
}

func existingBid(body []byte) (Outcome, error) {
	var r Record
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("parse bid record response: %w", err)
	}
	return decorateRecord(r), nil
}

// auctionClosed parses final_price/closed_at best effort: a 410 with an
// empty or unreadable body is still a closed auction.
func auctionClosed(status int, body []byte) DomainError {
	var closed closedResponse
	_ = json.Unmarshal(body, &closed)

	return DomainError{
		Code:           CodeAuctionClosed,
		Message:        "the auction has closed",
		UpstreamStatus: status,
		FinalPrice:     closed.FinalPrice,
		ClosedAt:       closed.ClosedAt,
	}
}

func upstreamError(status int) DomainError {
	return DomainError{
		Code:           CodeUpstream,
		Message:        fmt.Sprintf("auction service answered %d %s", status, http.StatusText(status)),
		UpstreamStatus: status,
		Retryable:      Retryable(status),
	}
}
