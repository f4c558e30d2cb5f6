package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/xandys/eccbc-mcp/internal/mcp/tools"
)

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	Router  *tools.Router
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"eccbc-stock-management",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"search_products": mcp.NewTool("search_products",
			mcp.WithDescription("Rechercher des produits par nom en français, arabe ou anglais"),
			mcp.WithString("search_term",
				mcp.Required(),
				mcp.Description("Terme de recherche (coca, فانتا, sprite, etc.)"),
			),
			mcp.WithString("language",
				mcp.Description("Langue de recherche (fr, ar, en)"),
				mcp.DefaultString("fr"),
			),
		),
		"check_stock": mcp.NewTool("check_stock",
			mcp.WithDescription("Vérifier la disponibilité d'un produit spécifique"),
			mcp.WithNumber("product_id",
				mcp.Required(),
				mcp.Description("ID du produit à vérifier"),
			),
			mcp.WithString("language",
				mcp.Description("Langue pour la réponse (fr, ar, en)"),
				mcp.DefaultString("fr"),
			),
		),
		"get_all_products": mcp.NewTool("get_all_products",
			mcp.WithDescription("Récupérer tous les produits disponibles avec stock"),
			mcp.WithBoolean("active_only",
				mcp.Description("Récupérer seulement les produits actifs"),
				mcp.DefaultBool(true),
			),
		),
		"create_order": mcp.NewTool("create_order",
			mcp.WithDescription("Créer une nouvelle commande pour un client"),
			mcp.WithString("customer_phone",
				mcp.Required(),
				mcp.Description("Numéro WhatsApp du client"),
			),
			mcp.WithArray("items",
				mcp.Required(),
				mcp.Description("Liste des produits commandés"),
				mcp.Items(map[string]any{
					"type": "object",
					"properties": map[string]any{
						"product_id": map[string]any{"type": "integer"},
						"quantity":   map[string]any{"type": "integer"},
					},
					"required": []string{"product_id", "quantity"},
				}),
			),
			mcp.WithString("customer_name",
				mcp.Description("Nom optionnel du client"),
			),
			mcp.WithString("language",
				mcp.Description("Langue de communication"),
				mcp.DefaultString("fr"),
			),
			mcp.WithString("notes",
				mcp.Description("Notes supplémentaires"),
			),
		),
		"get_customer_history": mcp.NewTool("get_customer_history",
			mcp.WithDescription("Récupérer l'historique des commandes d'un client"),
			mcp.WithString("customer_phone",
				mcp.Required(),
				mcp.Description("Numéro du client"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Nombre max de commandes"),
				mcp.DefaultNumber(10),
			),
		),
	}

	router := tools.NewRouter(cfg.ToolAdapters, cfg.Logger.WithName("tools"))
	for name := range cfg.ToolAdapters {
		tool, ok := toolDefinitions[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(tool, router.Dispatch)
	}

	if cfg.Resources != nil {
		for _, resource := range cfg.Resources.Definitions() {
			mcpServer.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				text, err := cfg.Resources.Read(ctx, req.Params.URI)
				if err != nil {
					return nil, err
				}
				return []mcp.ResourceContents{
					mcp.TextResourceContents{
						URI:      req.Params.URI,
						MIMEType: "text/plain",
						Text:     text,
					},
				}, nil
			})
		}
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		Router:  router,
	}
}

// ServeStdio runs the server over stdin/stdout, the transport Claude Desktop
// speaks.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
