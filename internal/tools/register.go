package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Register adds the five auction tools to the server.
func Register(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("get_auction_info",
		mcp.WithDescription("Get the current auction state: price curve position, raise progress and bid bounds."),
	), h.GetAuctionInfo)

	s.AddTool(mcp.NewTool("create_auction_bid",
		mcp.WithDescription("Place a new bid, locking the current price. Returns payment instructions, or the wallet's existing bid if one was already placed."),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description(fmt.Sprintf("Bid amount in TON, between %v and %v.", h.cfg.Bid.MinAmount, h.cfg.Bid.MaxAmount)),
			mcp.Min(h.cfg.Bid.MinAmount),
			mcp.Max(h.cfg.Bid.MaxAmount),
		),
		mcp.WithString("wallet",
			mcp.Required(),
			mcp.Description("TON wallet address the bid belongs to."),
		),
	), h.CreateBid)

	s.AddTool(mcp.NewTool("check_bid_status",
		mcp.WithDescription("Check a bid by its id: payment still pending, completed, allocated, refunded or expired."),
		mcp.WithString("bid_id",
			mcp.Required(),
			mcp.Description("The bid id returned when the bid was created."),
		),
	), h.CheckBidStatus)

	s.AddTool(mcp.NewTool("get_my_bid",
		mcp.WithDescription("Look up the bid owned by a wallet. Reports absence when no bid was placed yet."),
		mcp.WithString("wallet",
			mcp.Required(),
			mcp.Description("TON wallet address to look up."),
		),
	), h.GetMyBid)

	s.AddTool(mcp.NewTool("get_recent_bids",
		mcp.WithDescription("List recent bids, most recent first, with the current auction price."),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum entries to return, capped at %d.", h.cfg.List.MaxLimit)),
			mcp.DefaultNumber(float64(h.cfg.List.DefaultLimit)),
			mcp.Min(1),
			mcp.Max(float64(h.cfg.List.MaxLimit)),
		),
	), h.GetRecentBids)
}
