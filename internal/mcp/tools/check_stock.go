package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/mcp/tools/types"
)

type StockService interface {
	CheckStock(ctx context.Context, productID int, language string) (json.RawMessage, error)
}

type CheckStockHandler struct {
	Service StockService
}

func (h *CheckStockHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	productID, err := parseProductID(args["product_id"])
	if err != nil {
		return errorEnvelope(err.Error()), nil
	}
	language := stringArgument(args, "language", "fr")

	stock, err := h.Service.CheckStock(ctx, productID, language)
	if err != nil {
		return errorEnvelope(err.Error()), nil
	}

	return successEnvelope(types.StockResult{Success: true, Stock: stock}), nil
}
