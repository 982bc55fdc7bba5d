package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/whopdash/internal/app/system/flash"
	"go.uber.org/zap"
)

func newTestManager() *flash.Manager {
	return flash.NewManager("test-key-0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())
}

// carryCookies copies the cookies set by one response onto a follow-up
// request, mimicking a browser redirect.
func carryCookies(rec *httptest.ResponseRecorder, req *http.Request) {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
}

func TestFlash_RoundTrip(t *testing.T) {
	mgr := newTestManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/products/prod_1/message", nil)
	mgr.Success(rec, req, "Message sent to 3 member(s). 1 failed.")

	next := httptest.NewRequest("GET", "/products/prod_1", nil)
	carryCookies(rec, next)

	got := mgr.Take(httptest.NewRecorder(), next)
	if len(got) != 1 {
		t.Fatalf("expected 1 flash, got %d", len(got))
	}
	if got[0].Kind != flash.KindSuccess {
		t.Errorf("expected success kind, got %q", got[0].Kind)
	}
	if got[0].Text != "Message sent to 3 member(s). 1 failed." {
		t.Errorf("unexpected text %q", got[0].Text)
	}
}

func TestFlash_TakeClearsPending(t *testing.T) {
	mgr := newTestManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products", nil)
	mgr.Failure(rec, req, "Failed to load products: boom")

	next := httptest.NewRequest("GET", "/products", nil)
	carryCookies(rec, next)

	takeRec := httptest.NewRecorder()
	if got := mgr.Take(takeRec, next); len(got) != 1 {
		t.Fatalf("expected 1 flash on first take, got %d", len(got))
	}

	// The cleared cookie from the take must yield nothing on a later read.
	after := httptest.NewRequest("GET", "/products", nil)
	carryCookies(takeRec, after)
	if got := mgr.Take(httptest.NewRecorder(), after); len(got) != 0 {
		t.Errorf("expected no flashes after take, got %d", len(got))
	}
}

func TestFlash_NoCookieMeansNoFlashes(t *testing.T) {
	mgr := newTestManager()
	req := httptest.NewRequest("GET", "/products", nil)
	if got := mgr.Take(httptest.NewRecorder(), req); len(got) != 0 {
		t.Errorf("expected no flashes, got %d", len(got))
	}
}

func TestFlash_MultipleQueuedInOrder(t *testing.T) {
	mgr := newTestManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/products", nil)
	mgr.Failure(rec, req, "first")

	// Queue a second flash on the session the first write produced.
	mid := httptest.NewRequest("GET", "/products", nil)
	carryCookies(rec, mid)
	rec2 := httptest.NewRecorder()
	mgr.Success(rec2, mid, "second")

	next := httptest.NewRequest("GET", "/products", nil)
	carryCookies(rec2, next)

	got := mgr.Take(httptest.NewRecorder(), next)
	if len(got) != 2 {
		t.Fatalf("expected 2 flashes, got %d", len(got))
	}
	if got[0].Text != "first" || got[1].Text != "second" {
		t.Errorf("flashes out of order: %+v", got)
	}
}
