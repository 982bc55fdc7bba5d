// internal/testutil/whopserver.go
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/whopdash/internal/domain/models"
)

// WhopServer is a configurable fake of the Whop backend API for tests.
// It serves the three dashboard routes and records every request it sees,
// so tests can assert both on responses and on whether a call was made
// at all.
type WhopServer struct {
	Server *httptest.Server

	mu              sync.Mutex
	products        []models.Product
	activeByProduct map[string]int
	omitActive      bool
	memberships     map[string][]models.Membership
	listErr         string
	detailErr       string
	sendErr         string
	successCount    int
	errorCount      int
	requests        map[string]int
	lastMessage     string
}

// NewWhopServer starts a fake backend and registers cleanup with t.
func NewWhopServer(t *testing.T) *WhopServer {
	t.Helper()
	ws := &WhopServer{
		products:        []models.Product{},
		activeByProduct: map[string]int{},
		memberships:     map[string][]models.Membership{},
		requests:        map[string]int{},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products", ws.serveList)
	mux.HandleFunc("/api/products/", ws.serveProduct)
	ws.Server = httptest.NewServer(mux)
	t.Cleanup(ws.Server.Close)
	return ws
}

// URL returns the fake backend's base URL.
func (ws *WhopServer) URL() string { return ws.Server.URL }

// SetProducts replaces the product collection.
func (ws *WhopServer) SetProducts(products ...models.Product) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.products = products
}

// SetActive sets the active-user count for one product id.
func (ws *WhopServer) SetActive(productID string, count int) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.activeByProduct[productID] = count
}

// OmitActiveByProduct makes the list response leave out the
// activeByProduct field entirely.
func (ws *WhopServer) OmitActiveByProduct() {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.omitActive = true
}

// SetMemberships sets the membership list returned for one product id.
func (ws *WhopServer) SetMemberships(productID string, memberships ...models.Membership) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.memberships[productID] = memberships
}

// FailList makes the list route answer with a body error sentinel.
func (ws *WhopServer) FailList(msg string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.listErr = msg
}

// FailDetail makes the detail route answer with a body error sentinel.
func (ws *WhopServer) FailDetail(msg string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.detailErr = msg
}

// FailSend makes the send route answer with a body error sentinel.
func (ws *WhopServer) FailSend(msg string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.sendErr = msg
}

// SetSendCounts sets the aggregate counts the send route reports.
func (ws *WhopServer) SetSendCounts(success, failed int) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.successCount = success
	ws.errorCount = failed
}

// Requests returns how many requests the named route has served.
// Route keys: "list", "detail", "send".
func (ws *WhopServer) Requests(route string) int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.requests[route]
}

// LastMessage returns the message body of the most recent send request.
func (ws *WhopServer) LastMessage() string {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.lastMessage
}

func (ws *WhopServer) serveList(w http.ResponseWriter, r *http.Request) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.requests["list"]++

	if ws.listErr != "" {
		writeJSON(w, map[string]any{"error": ws.listErr})
		return
	}
	body := map[string]any{"products": ws.products}
	if !ws.omitActive {
		body["activeByProduct"] = ws.activeByProduct
	}
	writeJSON(w, body)
}

func (ws *WhopServer) serveProduct(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/products/")

	if r.Method == http.MethodPost && strings.HasSuffix(rest, "/message") {
		ws.serveSend(w, r, strings.TrimSuffix(rest, "/message"))
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.requests["detail"]++

	if ws.detailErr != "" {
		writeJSON(w, map[string]any{"error": ws.detailErr})
		return
	}

	body := map[string]any{
		"memberships": ws.membershipsFor(rest),
	}
	for i := range ws.products {
		if ws.products[i].ID == rest {
			p := ws.products[i]
			p.ActiveUsers = ws.activeByProduct[p.ID]
			body["product"] = p
			break
		}
	}
	writeJSON(w, body)
}

func (ws *WhopServer) serveSend(w http.ResponseWriter, r *http.Request, productID string) {
	var req struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.requests["send"]++
	ws.lastMessage = req.Message

	if ws.sendErr != "" {
		writeJSON(w, map[string]any{"error": ws.sendErr})
		return
	}
	writeJSON(w, map[string]any{
		"successCount": ws.successCount,
		"errorCount":   ws.errorCount,
	})
}

func (ws *WhopServer) membershipsFor(productID string) []models.Membership {
	if m, ok := ws.memberships[productID]; ok && m != nil {
		return m
	}
	return []models.Membership{}
}

func writeJSON(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
