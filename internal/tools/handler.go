package tools

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tonlaunch/auction-mcp/internal/api"
	"github.com/tonlaunch/auction-mcp/internal/classify"
	"github.com/tonlaunch/auction-mcp/internal/config"
	"github.com/tonlaunch/auction-mcp/internal/validate"
)

// Handler holds the five tool implementations.
type Handler struct {
	client *api.Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandler wires the tool handlers.
func NewHandler(client *api.Client, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{client: client, cfg: cfg, logger: logger}
}

// invocationLogger tags every record of one tool call with a correlation id.
func (h *Handler) invocationLogger(tool string) *slog.Logger {
	return h.logger.With("tool", tool, "invocation", uuid.NewString())
}

func (h *Handler) strictness() validate.Strictness {
	return validate.Strictness(h.cfg.Wallet.Validation)
}

// GetAuctionInfo implements get_auction_info.
func (h *Handler) GetAuctionInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.invocationLogger("get_auction_info")

	resp, err := h.client.GetInfo(ctx)
	if err != nil {
		return transportResult(log, err), nil
	}
	return h.classified(log, classify.EndpointInfo, resp)
}

// CreateBid implements create_auction_bid.
func (h *Handler) CreateBid(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.invocationLogger("create_auction_bid")

	amount, err := req.RequireFloat("amount")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	wallet, err := req.RequireString("wallet")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := validate.Amount(amount, h.cfg.Bid.MinAmount, h.cfg.Bid.MaxAmount); err != nil {
		return inputResult(log, err), nil
	}
	if err := validate.Wallet(wallet, h.strictness()); err != nil {
		return inputResult(log, err), nil
	}

	resp, err := h.client.CreateBid(ctx, amount, strings.TrimSpace(wallet))
	if err != nil {
		return transportResult(log, err), nil
	}
	return h.classified(log, classify.EndpointCreateBid, resp)
}

// CheckBidStatus implements check_bid_status.
func (h *Handler) CheckBidStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.invocationLogger("check_bid_status")

	bidID, err := req.RequireString("bid_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := validate.BidID(bidID); err != nil {
		return inputResult(log, err), nil
	}

	resp, err := h.client.CheckBid(ctx, strings.TrimSpace(bidID))
	if err != nil {
		return transportResult(log, err), nil
	}
	return h.classified(log, classify.EndpointBidByID, resp)
}

// GetMyBid implements get_my_bid. A 404 here is absence, not failure.
func (h *Handler) GetMyBid(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.invocationLogger("get_my_bid")

	wallet, err := req.RequireString("wallet")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := validate.Wallet(wallet, h.strictness()); err != nil {
		return inputResult(log, err), nil
	}

	resp, err := h.client.GetMyBid(ctx, strings.TrimSpace(wallet))
	if err != nil {
		return transportResult(log, err), nil
	}
	return h.classified(log, classify.EndpointBidByWallet, resp)
}

// GetRecentBids implements get_recent_bids.
func (h *Handler) GetRecentBids(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := h.invocationLogger("get_recent_bids")

	var requested *int
	if raw := req.GetFloat("limit", 0); raw != 0 {
		n := int(raw)
		requested = &n
	}
	limit := validate.ClampLimit(requested, h.cfg.List.DefaultLimit, h.cfg.List.MaxLimit)

	resp, err := h.client.GetRecentBids(ctx, limit)
	if err != nil {
		return transportResult(log, err), nil
	}
	return h.classified(log, classify.EndpointRecentBids, resp)
}

// classified runs the classifier and renders the outcome. A classifier error
// means the upstream body was unreadable; that is an internal fault of this
// call and propagates to the server's recovery layer.
func (h *Handler) classified(log *slog.Logger, endpoint classify.Endpoint, resp *api.Response) (*mcp.CallToolResult, error) {
	out, err := classify.Classify(endpoint, resp.Status, resp.Body)
	if err != nil {
		log.Error("unreadable upstream response",
			"endpoint", endpoint.String(),
			"status", resp.Status,
			"error", err,
		)
		return nil, err
	}

	log.Info("classified",
		"endpoint", endpoint.String(),
		"status", resp.Status,
		"outcome", out.Kind(),
	)
	return renderResult(out)
}
