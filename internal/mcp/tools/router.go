package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/logging"
)

// Adapter is implemented by every tool handler.
type Adapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Router dispatches tool calls by name over a closed adapter set. It is the
// outermost boundary: whatever happens inside a handler, the caller gets a
// JSON envelope, never a transport-level error.
type Router struct {
	adapters map[string]Adapter
	log      logging.Logger
}

func NewRouter(adapters map[string]Adapter, log logging.Logger) *Router {
	return &Router{adapters: adapters, log: log}
}

func (r *Router) Dispatch(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	name := req.Params.Name
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error(fmt.Errorf("%v", rec), "panic in tool handler", "tool", name)
			result = errorEnvelope(fmt.Sprintf("internal error in tool %s", name))
			err = nil
		}
	}()

	adapter, ok := r.adapters[name]
	if !ok {
		return errorEnvelope(fmt.Sprintf("unknown tool: %s", name)), nil
	}

	result, err = adapter.ToolAdapter(ctx, req)
	if err != nil {
		r.log.Error(err, "tool handler failed", "tool", name)
		return errorEnvelope(err.Error()), nil
	}
	return result, nil
}
