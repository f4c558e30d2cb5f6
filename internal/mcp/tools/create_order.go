package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/mcp/tools/types"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order map[string]any) (json.RawMessage, error)
}

type CreateOrderHandler struct {
	Service OrderService
}

func (h *CreateOrderHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	phone, _ := args["customer_phone"].(string)
	if strings.TrimSpace(phone) == "" {
		return errorEnvelope("customer_phone parameter is required"), nil
	}
	items, ok := args["items"].([]any)
	if !ok || len(items) == 0 {
		return errorEnvelope("items parameter is required"), nil
	}

	// Order validation is the backend's job; the arguments go through as-is.
	order, err := h.Service.CreateOrder(ctx, args)
	if err != nil {
		return errorEnvelope(err.Error()), nil
	}

	return successEnvelope(types.OrderResult{Success: true, Order: order}), nil
}
