package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xandys/eccbc-mcp/internal/catalog"
	"github.com/xandys/eccbc-mcp/internal/logging"
)

const (
	CatalogURI = "eccbc://catalog"
	DarijaURI  = "eccbc://darija"
	ContextURI = "eccbc://context"
)

const mimeType = "text/plain"

type ProductLister interface {
	ListProducts(ctx context.Context, activeOnly bool) (json.RawMessage, error)
}

// Registry resolves the three eccbc:// resources. The catalog is rendered
// from a live backend fetch; the other two are static.
type Registry struct {
	backend ProductLister
	log     logging.Logger
}

func NewRegistry(backend ProductLister, log logging.Logger) *Registry {
	return &Registry{backend: backend, log: log}
}

// Definitions returns the resource descriptors in their published order.
func (r *Registry) Definitions() []mcp.Resource {
	return []mcp.Resource{
		mcp.NewResource(CatalogURI, "Catalogue produits ECCBC",
			mcp.WithResourceDescription("Catalogue complet des produits avec stock en temps réel"),
			mcp.WithMIMEType(mimeType),
		),
		mcp.NewResource(DarijaURI, "Guide expressions Darija",
			mcp.WithResourceDescription("Expressions darija courantes pour commandes boissons"),
			mcp.WithMIMEType(mimeType),
		),
		mcp.NewResource(ContextURI, "Contexte business ECCBC",
			mcp.WithResourceDescription("Informations contextuelles sur l'entreprise et processus"),
			mcp.WithMIMEType(mimeType),
		),
	}
}

// Read resolves a resource URI to its text body. Backend trouble while
// building the catalog degrades to an error string in the body; only an
// unknown URI is an error.
func (r *Registry) Read(ctx context.Context, uri string) (string, error) {
	switch uri {
	case CatalogURI:
		return r.renderCatalog(ctx), nil
	case DarijaURI:
		return darijaGuide, nil
	case ContextURI:
		return businessContext, nil
	default:
		return "", fmt.Errorf("ressource inconnue: %s", uri)
	}
}

func (r *Registry) renderCatalog(ctx context.Context) string {
	products, err := r.backend.ListProducts(ctx, true)
	if err != nil {
		r.log.Error(err, "catalog fetch failed")
		return "Erreur: Impossible de récupérer le catalogue"
	}
	return catalog.Render(products)
}
