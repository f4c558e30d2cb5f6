package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/mcp/tools/types"
)

type HistoryService interface {
	CustomerHistory(ctx context.Context, phone string, limit int) (json.RawMessage, error)
}

type CustomerHistoryHandler struct {
	Service HistoryService
}

func (h *CustomerHistoryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	phone, _ := args["customer_phone"].(string)
	if strings.TrimSpace(phone) == "" {
		return errorEnvelope("customer_phone parameter is required"), nil
	}
	limit := intArgument(args, "limit", 10)

	orders, err := h.Service.CustomerHistory(ctx, phone, limit)
	if err != nil {
		return errorEnvelope(err.Error()), nil
	}

	return successEnvelope(types.OrderHistoryResult{Success: true, Orders: orders}), nil
}
