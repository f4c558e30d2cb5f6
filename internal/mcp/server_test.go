package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-logr/logr"
	mcpt "github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/backend"
	"github.com/xandys/eccbc-mcp/internal/logging"
	"github.com/xandys/eccbc-mcp/internal/mcp/resources"
	"github.com/xandys/eccbc-mcp/internal/mcp/tools"
)

func testConfig(client *backend.Client) Config {
	log := logging.New(logr.Discard())
	return Config{
		ToolAdapters: map[string]tools.Adapter{
			"search_products":      &tools.SearchProductsHandler{Service: client},
			"check_stock":          &tools.CheckStockHandler{Service: client},
			"get_all_products":     &tools.GetAllProductsHandler{Service: client},
			"create_order":         &tools.CreateOrderHandler{Service: client},
			"get_customer_history": &tools.CustomerHistoryHandler{Service: client},
		},
		Resources: resources.NewRegistry(client, log),
		Logger:    log,
	}
}

func callRequest(name string, args map[string]any) mcpt.CallToolRequest {
	req := mcpt.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func envelope(t *testing.T, result *mcpt.CallToolResult) map[string]any {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected a text result")
	}
	text, ok := result.Content[0].(mcpt.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	return payload
}

func allToolCalls() map[string]map[string]any {
	return map[string]map[string]any{
		"search_products":  {"search_term": "coca"},
		"check_stock":      {"product_id": float64(1)},
		"get_all_products": {},
		"create_order": {
			"customer_phone": "+212600000000",
			"items":          []any{map[string]any{"product_id": float64(1), "quantity": float64(2)}},
		},
		"get_customer_history": {"customer_phone": "+212600000000"},
	}
}

func TestAllToolsSucceedAgainstHealthyBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.Write([]byte(`{"order_id":42}`))
		case strings.HasPrefix(r.URL.Path, "/api/stock/check/"):
			w.Write([]byte(`{"available":true}`))
		default:
			w.Write([]byte(`[{"id":1,"name":"Coca-Cola"}]`))
		}
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, srv.Client(), logging.New(logr.Discard()))
	server := New(testConfig(client))

	for name, args := range allToolCalls() {
		result, err := server.Router.Dispatch(context.Background(), callRequest(name, args))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		payload := envelope(t, result)
		if payload["success"] != true {
			t.Fatalf("%s: expected success envelope, got %v", name, payload)
		}
	}
}

func TestAllToolsDegradeAgainstFailingBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, srv.Client(), logging.New(logr.Discard()))
	server := New(testConfig(client))

	for name, args := range allToolCalls() {
		result, err := server.Router.Dispatch(context.Background(), callRequest(name, args))
		if err != nil {
			t.Fatalf("%s: backend failure must not surface as an error: %v", name, err)
		}
		payload := envelope(t, result)
		if payload["success"] != false {
			t.Fatalf("%s: expected failure envelope, got %v", name, payload)
		}
		if message, _ := payload["error"].(string); message == "" {
			t.Fatalf("%s: expected non-empty error string", name)
		}
	}
}

func TestUnknownToolMakesNoBackendCall(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, srv.Client(), logging.New(logr.Discard()))
	server := New(testConfig(client))

	result, err := server.Router.Dispatch(context.Background(), callRequest("delete_all", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := envelope(t, result)
	if payload["success"] != false {
		t.Fatalf("expected failure envelope, got %v", payload)
	}
	if message, _ := payload["error"].(string); !strings.Contains(message, "unknown tool") {
		t.Fatalf("expected unknown tool message, got %q", message)
	}
	if calls.Load() != 0 {
		t.Fatalf("unknown tool issued %d backend calls", calls.Load())
	}
}

func TestNewBuildsTransports(t *testing.T) {
	client := backend.NewClient("http://127.0.0.1:1", nil, logging.New(logr.Discard()))
	server := New(testConfig(client))

	if server.MCP == nil || server.HTTP == nil || server.Handler == nil || server.Router == nil {
		t.Fatal("server not fully assembled")
	}
}
