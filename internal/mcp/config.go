package mcp

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/xandys/eccbc-mcp/internal/backend"
	"github.com/xandys/eccbc-mcp/internal/config"
	"github.com/xandys/eccbc-mcp/internal/logging"
	"github.com/xandys/eccbc-mcp/internal/mcp/resources"
	"github.com/xandys/eccbc-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]tools.Adapter
	Resources    *resources.Registry
	Options      []server.StreamableHTTPOption
	Logger       logging.Logger
}

// DefaultConfig wires the adapter against the configured ECCBC backend. The
// HTTP client is built once here and shared by every handler for the process
// lifetime.
func DefaultConfig() Config {
	log := logging.New(logging.ForLevel(config.LogLevel()))
	httpClient := &http.Client{Timeout: config.HTTPTimeout()}
	client := backend.NewClient(config.BackendURL(), httpClient, log.WithName("backend"))

	return Config{
		ToolAdapters: map[string]tools.Adapter{
			"search_products":      &tools.SearchProductsHandler{Service: client},
			"check_stock":          &tools.CheckStockHandler{Service: client},
			"get_all_products":     &tools.GetAllProductsHandler{Service: client},
			"create_order":         &tools.CreateOrderHandler{Service: client},
			"get_customer_history": &tools.CustomerHistoryHandler{Service: client},
		},
		Resources: resources.NewRegistry(client, log.WithName("resources")),
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(config.EndpointPath()),
			server.WithStateLess(true),
		},
		Logger: log,
	}
}
