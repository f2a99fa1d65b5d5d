package tools

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tonlaunch/auction-mcp/internal/classify"
	"github.com/tonlaunch/auction-mcp/internal/validate"
)

// inputFailure is the structured result for a locally rejected argument.
type inputFailure struct {
	Outcome   string `json:"outcome"`
	Code      string `json:"code"`
	Field     string `json:"field"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// renderResult serializes an outcome with its discriminator into a text
// result.
func renderResult(out classify.Outcome) (*mcp.CallToolResult, error) {
	rendered, err := classify.Render(out)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(rendered)), nil
}

// inputResult renders a validation failure. No network call was made.
func inputResult(log *slog.Logger, err error) *mcp.CallToolResult {
	var ie *validate.InputError
	if !errors.As(err, &ie) {
		return mcp.NewToolResultError(err.Error())
	}

	log.Info("input rejected", "field", ie.Field, "reason", ie.Reason)

	body, merr := json.MarshalIndent(inputFailure{
		Outcome: "error",
		Code:    ie.Code(),
		Field:   ie.Field,
		Message: ie.Reason,
	}, "", "  ")
	if merr != nil {
		return mcp.NewToolResultError(ie.Error())
	}
	return mcp.NewToolResultText(string(body))
}

// transportResult reports an unreachable auction service. Fatal to this
// call only.
func transportResult(log *slog.Logger, err error) *mcp.CallToolResult {
	log.Error("transport failure", "error", err)
	return mcp.NewToolResultError(err.Error())
}
