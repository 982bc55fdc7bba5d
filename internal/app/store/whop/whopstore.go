// internal/app/store/whop/whopstore.go
//
// Package whopstore is the data-access layer for the dashboard. Where other
// apps would hold a database handle, this app's only backend is the Whop
// REST API, so the store wraps an http.Client pointed at a configured base
// URL and exposes typed operations over the three API routes.
//
// The backend signals application errors with an `error` field in an
// otherwise well-formed (often 200) response body. That convention stops
// here: callers only ever see Go errors, with *APIError marking the
// body-sentinel case.
package whopstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/whopdash/internal/domain/models"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 8 << 20

type Store struct {
	baseURL string
	http    *http.Client
}

// New creates a store for the API at baseURL. The http.Client owns
// transport-level policy (timeouts); the store adds none of its own.
func New(baseURL string, client *http.Client) *Store {
	if client == nil {
		client = http.DefaultClient
	}
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

// BaseURL returns the configured API base URL.
func (s *Store) BaseURL() string { return s.baseURL }

// CloseIdleConnections drops keep-alive connections held by the underlying
// HTTP client. Called during shutdown.
func (s *Store) CloseIdleConnections() { s.http.CloseIdleConnections() }

// ProductList is the result of one list fetch: the ordered products plus the
// parallel active-user mapping. Both are always non-nil; a product id absent
// from ActiveByProduct means zero active users.
type ProductList struct {
	Products        []models.Product
	ActiveByProduct map[string]int
}

// Detail is the result of one detail fetch. Product is nil when the backend
// returned no product (which is still a successful fetch).
type Detail struct {
	Product     *models.Product
	Memberships []models.Membership
}

// SendResult is the aggregate outcome of a broadcast send. The backend does
// not enumerate per-recipient outcomes; absent counts default to zero.
type SendResult struct {
	SuccessCount int
	ErrorCount   int
}

// Products fetches the product collection and active-user counts.
// GET /api/products
func (s *Store) Products(ctx context.Context) (ProductList, error) {
	var wire struct {
		apiEnvelope
		Products        []models.Product `json:"products"`
		ActiveByProduct map[string]int   `json:"activeByProduct"`
	}
	if err := s.get(ctx, "/api/products", &wire); err != nil {
		return ProductList{}, err
	}
	out := ProductList{
		Products:        wire.Products,
		ActiveByProduct: wire.ActiveByProduct,
	}
	if out.Products == nil {
		out.Products = []models.Product{}
	}
	if out.ActiveByProduct == nil {
		out.ActiveByProduct = map[string]int{}
	}
	return out, nil
}

// ProductDetail fetches one product together with its memberships. The id is
// forwarded as given (path-escaped only); the backend decides what a
// malformed id means.
// GET /api/products/{productId}
func (s *Store) ProductDetail(ctx context.Context, productID string) (Detail, error) {
	var wire struct {
		apiEnvelope
		Product     *models.Product     `json:"product"`
		Memberships []models.Membership `json:"memberships"`
	}
	if err := s.get(ctx, "/api/products/"+url.PathEscape(productID), &wire); err != nil {
		return Detail{}, err
	}
	out := Detail{Product: wire.Product, Memberships: wire.Memberships}
	if out.Memberships == nil {
		out.Memberships = []models.Membership{}
	}
	return out, nil
}

// SendMessage posts a broadcast message to every member of the product.
// The caller is responsible for trimming and rejecting empty text; the store
// sends whatever it is given.
// POST /api/products/{productId}/message
func (s *Store) SendMessage(ctx context.Context, productID, message string) (SendResult, error) {
	body := struct {
		Message string `json:"message"`
	}{Message: message}

	var wire struct {
		apiEnvelope
		SuccessCount int `json:"successCount"`
		ErrorCount   int `json:"errorCount"`
	}
	path := "/api/products/" + url.PathEscape(productID) + "/message"
	if err := s.post(ctx, path, body, &wire); err != nil {
		return SendResult{}, err
	}
	return SendResult{SuccessCount: wire.SuccessCount, ErrorCount: wire.ErrorCount}, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Request plumbing                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// apiEnvelope is embedded in every wire struct to pick up the backend's
// error sentinel.
type apiEnvelope struct {
	Error string `json:"error"`
}

func (e apiEnvelope) apiError() string { return e.Error }

type envelope interface {
	apiError() string
}

func (s *Store) get(ctx context.Context, path string, out envelope) error {
	return s.do(ctx, http.MethodGet, path, nil, out)
}

func (s *Store) post(ctx context.Context, path string, body any, out envelope) error {
	return s.do(ctx, http.MethodPost, path, body, out)
}

func (s *Store) do(ctx context.Context, method, path string, body any, out envelope) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("whop api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("whop api %s %s: read response: %w", method, path, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// A non-JSON body on a failure status is a plain transport-level
		// failure; on a success status it means the contract was broken.
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("whop api %s %s: unexpected status %d", method, path, resp.StatusCode)
		}
		return fmt.Errorf("whop api %s %s: decode response: %w", method, path, err)
	}

	// The sentinel wins over the HTTP status in both directions: an error
	// field in a 200 is a failure, and its message is authoritative when
	// the status is non-2xx too.
	if msg := out.apiError(); msg != "" {
		return &APIError{Message: msg}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("whop api %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return nil
}
