package types

import "encoding/json"

// Result envelopes returned from every tool call. Backend payloads stay
// opaque: they are forwarded as raw JSON without assuming their schema.

type SearchProductsResult struct {
	Success    bool            `json:"success"`
	Products   json.RawMessage `json:"products"`
	Count      int             `json:"count"`
	SearchTerm string          `json:"search_term"`
	Language   string          `json:"language"`
}

type StockResult struct {
	Success bool            `json:"success"`
	Stock   json.RawMessage `json:"stock"`
}

type ProductListResult struct {
	Success  bool            `json:"success"`
	Products json.RawMessage `json:"products"`
	Count    int             `json:"count"`
}

type OrderResult struct {
	Success bool            `json:"success"`
	Order   json.RawMessage `json:"order"`
}

type OrderHistoryResult struct {
	Success bool            `json:"success"`
	Orders  json.RawMessage `json:"orders"`
}

// ErrorResult is the failure side of the envelope; every failed call, whatever
// the cause, collapses into it.
type ErrorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
