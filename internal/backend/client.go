package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/xandys/eccbc-mcp/internal/logging"
)

// Client talks to the ECCBC stock/order REST API. Response bodies are passed
// through as opaque JSON; this package never assumes their schema.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewClient builds a Client for the given base URL. The HTTP client is shared
// by every call for the lifetime of the process; pass nil to get one with a
// 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client, log logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    httpClient,
		log:     log,
	}
}

// SearchProducts queries products matching term in the given language.
func (c *Client) SearchProducts(ctx context.Context, term, language string) (json.RawMessage, error) {
	return c.get(ctx, "/api/products/search/"+url.PathEscape(term), url.Values{"language": {language}})
}

// CheckStock returns availability for a single product.
func (c *Client) CheckStock(ctx context.Context, productID int, language string) (json.RawMessage, error) {
	return c.get(ctx, "/api/stock/check/"+strconv.Itoa(productID), url.Values{"language": {language}})
}

// ListProducts returns the full product list, optionally restricted to active
// products.
func (c *Client) ListProducts(ctx context.Context, activeOnly bool) (json.RawMessage, error) {
	return c.get(ctx, "/api/products", url.Values{"active_only": {strconv.FormatBool(activeOnly)}})
}

// CreateOrder posts the order arguments verbatim; validation is owned by the
// backend.
func (c *Client) CreateOrder(ctx context.Context, order map[string]any) (json.RawMessage, error) {
	return c.post(ctx, "/api/orders", order)
}

// CustomerHistory returns up to limit past orders for a customer phone number.
func (c *Client) CustomerHistory(ctx context.Context, phone string, limit int) (json.RawMessage, error) {
	return c.get(ctx, "/api/orders/"+url.PathEscape(phone), url.Values{"limit": {strconv.Itoa(limit)}})
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body for %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s: backend returned %s: %s", req.Method, req.URL.Path, resp.Status, snippet(body))
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s %s: backend returned invalid JSON: %s", req.Method, req.URL.Path, snippet(body))
	}

	c.log.Debug("backend call", "method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "elapsed", time.Since(start).String())
	return json.RawMessage(body), nil
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
