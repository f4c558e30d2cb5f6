package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/logging"
)

type recordingAdapter struct {
	called bool
	result *mcp.CallToolResult
	err    error
}

func (a *recordingAdapter) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a.called = true
	return a.result, a.err
}

type panickyAdapter struct{}

func (a *panickyAdapter) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	panic("boom")
}

func TestDispatchUnknownTool(t *testing.T) {
	known := &recordingAdapter{result: successEnvelope(map[string]any{"success": true})}
	router := NewRouter(map[string]Adapter{"search_products": known}, logging.New(logr.Discard()))

	result, err := router.Dispatch(context.Background(), callRequest("delete_all", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	message := expectFailure(t, result)
	if !strings.Contains(message, "unknown tool") {
		t.Fatalf("expected unknown tool message, got %q", message)
	}
	if known.called {
		t.Fatal("registered adapter must not run for an unknown name")
	}
}

func TestDispatchRoutesToAdapter(t *testing.T) {
	adapter := &recordingAdapter{result: successEnvelope(map[string]any{"success": true})}
	router := NewRouter(map[string]Adapter{"check_stock": adapter}, logging.New(logr.Discard()))

	result, err := router.Dispatch(context.Background(), callRequest("check_stock", map[string]any{"product_id": float64(1)}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !adapter.called {
		t.Fatal("adapter not invoked")
	}
	if envelope(t, result)["success"] != true {
		t.Fatal("adapter result not passed through")
	}
}

func TestDispatchConvertsAdapterErrors(t *testing.T) {
	adapter := &recordingAdapter{err: context.DeadlineExceeded}
	router := NewRouter(map[string]Adapter{"check_stock": adapter}, logging.New(logr.Discard()))

	result, err := router.Dispatch(context.Background(), callRequest("check_stock", nil))
	if err != nil {
		t.Fatalf("dispatch must never surface handler errors, got %v", err)
	}
	expectFailure(t, result)
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	router := NewRouter(map[string]Adapter{"create_order": &panickyAdapter{}}, logging.New(logr.Discard()))

	result, err := router.Dispatch(context.Background(), callRequest("create_order", nil))
	if err != nil {
		t.Fatalf("panic must not escape dispatch, got %v", err)
	}
	message := expectFailure(t, result)
	if !strings.Contains(message, "internal error") {
		t.Fatalf("unexpected panic message %q", message)
	}
}
