package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/mcp/tools/types"
)

type ProductSearchService interface {
	SearchProducts(ctx context.Context, term, language string) (json.RawMessage, error)
}

type SearchProductsHandler struct {
	Service ProductSearchService
}

func (h *SearchProductsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	term, _ := args["search_term"].(string)
	if strings.TrimSpace(term) == "" {
		return errorEnvelope("search_term parameter is required"), nil
	}
	language := stringArgument(args, "language", "fr")

	products, err := h.Service.SearchProducts(ctx, term, language)
	if err != nil {
		return errorEnvelope(err.Error()), nil
	}

	return successEnvelope(types.SearchProductsResult{
		Success:    true,
		Products:   products,
		Count:      countItems(products),
		SearchTerm: term,
		Language:   language,
	}), nil
}
