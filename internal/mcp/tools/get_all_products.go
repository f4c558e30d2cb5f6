package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/mcp/tools/types"
)

type ProductListService interface {
	ListProducts(ctx context.Context, activeOnly bool) (json.RawMessage, error)
}

type GetAllProductsHandler struct {
	Service ProductListService
}

func (h *GetAllProductsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	activeOnly := boolArgument(req.GetArguments(), "active_only", true)

	products, err := h.Service.ListProducts(ctx, activeOnly)
	if err != nil {
		return errorEnvelope(err.Error()), nil
	}

	return successEnvelope(types.ProductListResult{
		Success:  true,
		Products: products,
		Count:    countItems(products),
	}), nil
}
