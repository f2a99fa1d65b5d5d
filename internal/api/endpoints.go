package api

import (
	"context"
	"net/url"
	"strconv"
)

// Endpoint paths under the auction base URL. The /bid endpoint is
// dual-purpose: amount+wallet creates a bid, bid_id queries one.
const (
	pathInfo  = "/info"
	pathBid   = "/bid"
	pathMyBid = "/my-bid"
	pathBids  = "/bids"
)

// GetInfo fetches the current auction snapshot.
func (c *Client) GetInfo(ctx context.Context) (*Response, error) {
	return c.send(ctx, pathInfo, nil)
}

// CreateBid asks the auction to lock the current price for a new bid.
func (c *Client) CreateBid(ctx context.Context, amount float64, wallet string) (*Response, error) {
	query := url.Values{}
	query.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	query.Set("wallet", wallet)
	return c.send(ctx, pathBid, query)
}

// CheckBid queries a bid by id.
func (c *Client) CheckBid(ctx context.Context, bidID string) (*Response, error) {
	query := url.Values{}
	query.Set("bid_id", bidID)
	return c.send(ctx, pathBid, query)
}

// GetMyBid queries the bid owned by a wallet, if any.
func (c *Client) GetMyBid(ctx context.Context, wallet string) (*Response, error) {
	query := url.Values{}
	query.Set("wallet", wallet)
	return c.send(ctx, pathMyBid, query)
}

// GetRecentBids fetches the bounded recent-bids listing.
func (c *Client) GetRecentBids(ctx context.Context, limit int) (*Response, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	return c.send(ctx, pathBids, query)
}
