package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"

	"github.com/xandys/eccbc-mcp/internal/mcp/tools/types"
)

func stringArgument(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intArgument(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		if int(v) > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return fallback
}

func boolArgument(args map[string]any, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}

func parseProductID(value any) (int, error) {
	switch v := value.(type) {
	case float64:
		if v <= 0 {
			return 0, fmt.Errorf("product_id must be positive")
		}
		return int(v), nil
	case int:
		if v <= 0 {
			return 0, fmt.Errorf("product_id must be positive")
		}
		return v, nil
	default:
		return 0, fmt.Errorf("product_id must be provided")
	}
}

// countItems returns the element count of an opaque JSON array, 0 for
// anything that is not an array.
func countItems(raw json.RawMessage) int {
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return 0
	}
	return len(parsed.Array())
}

func mustMarshal(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func successEnvelope(v interface{}) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(mustMarshal(v)))
}

func errorEnvelope(message string) *mcp.CallToolResult {
	return mcp.NewToolResultText(string(mustMarshal(types.ErrorResult{Success: false, Error: message})))
}
