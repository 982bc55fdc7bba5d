package products_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/whopdash/internal/app/features/errors"
	"github.com/dalemusser/whopdash/internal/app/features/products"
	whopstore "github.com/dalemusser/whopdash/internal/app/store/whop"
	"github.com/dalemusser/whopdash/internal/app/system/flash"
	"github.com/dalemusser/whopdash/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, srv *testutil.WhopServer) *products.Handler {
	t.Helper()
	logger := zap.NewNop()
	store := whopstore.New(srv.URL(), nil)
	flashMgr := flash.NewManager("test-key-0123456789abcdef0123456789abcdef", "test-session", "", false, logger)
	return products.NewHandler(store, flashMgr, uierrors.NewErrorLogger(logger), logger)
}

// render wraps a handler call so template rendering, which needs the booted
// engine from bootstrap, cannot take the test down.
func render(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func sendRequest(productID, message string) *http.Request {
	form := url.Values{"message": {message}}
	req := httptest.NewRequest("POST", "/products/"+productID+"/message", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithChiURLParam(req, "productID", productID)
}

func TestNewHandler(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	h := newTestHandler(t, srv)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
	if h.List == nil {
		t.Error("expected a list holder to be created")
	}
}

func TestServeList_FetchesFromBackend(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	srv.SetProducts(testutil.ProductFixtures(2)...)
	handler := newTestHandler(t, srv)

	req := httptest.NewRequest("GET", "/products", nil)
	rec := httptest.NewRecorder()
	render(func() { handler.ServeList(rec, req) })

	if got := srv.Requests("list"); got != 1 {
		t.Errorf("expected 1 list fetch, got %d", got)
	}
	snap := handler.List.Snapshot()
	if len(snap.Products) != 2 {
		t.Errorf("expected 2 products in the snapshot, got %d", len(snap.Products))
	}
}

func TestServeList_BackendFailureKeepsPriorSnapshot(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	srv.SetProducts(testutil.ProductFixtures(3)...)
	handler := newTestHandler(t, srv)

	render(func() {
		handler.ServeList(httptest.NewRecorder(), httptest.NewRequest("GET", "/products", nil))
	})

	srv.FailList("upstream exploded")
	render(func() {
		handler.ServeList(httptest.NewRecorder(), httptest.NewRequest("GET", "/products", nil))
	})

	snap := handler.List.Snapshot()
	if len(snap.Products) != 3 {
		t.Errorf("expected prior products kept after failure, got %d", len(snap.Products))
	}
	if snap.LastError == "" {
		t.Error("expected the failure to be recorded")
	}
}

func TestServeDetail_FetchesFromBackend(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	product := testutil.ProductFixture("Starter", "visible")
	srv.SetProducts(product)
	handler := newTestHandler(t, srv)

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/products/"+product.ID, nil), "productID", product.ID)
	render(func() { handler.ServeDetail(httptest.NewRecorder(), req) })

	if got := srv.Requests("detail"); got != 1 {
		t.Errorf("expected 1 detail fetch, got %d", got)
	}
}

func TestServeSendMessage_SuccessRedirects(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	srv.SetSendCounts(3, 1)
	handler := newTestHandler(t, srv)

	rec := httptest.NewRecorder()
	handler.ServeSendMessage(rec, sendRequest("prod_1", "hello everyone"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/products/prod_1" {
		t.Errorf("expected redirect back to the detail page, got %q", loc)
	}
	if got := srv.Requests("send"); got != 1 {
		t.Errorf("expected 1 send request, got %d", got)
	}
	if srv.LastMessage() != "hello everyone" {
		t.Errorf("unexpected message on the wire: %q", srv.LastMessage())
	}
}

func TestServeSendMessage_EmptyMessageMakesNoCall(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	handler := newTestHandler(t, srv)

	rec := httptest.NewRecorder()
	render(func() { handler.ServeSendMessage(rec, sendRequest("prod_1", "   ")) })

	if got := srv.Requests("send"); got != 0 {
		t.Errorf("whitespace-only message must not reach the backend, saw %d requests", got)
	}
	if rec.Code == http.StatusSeeOther {
		t.Error("an empty message must re-render the page, not redirect")
	}
}

func TestServeSendMessage_BackendFailureDoesNotRedirect(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	srv.FailSend("broadcast rejected")
	handler := newTestHandler(t, srv)

	rec := httptest.NewRecorder()
	render(func() { handler.ServeSendMessage(rec, sendRequest("prod_1", "hello")) })

	if got := srv.Requests("send"); got != 1 {
		t.Errorf("expected 1 send attempt, got %d", got)
	}
	if rec.Code == http.StatusSeeOther {
		t.Error("a failed send must re-render the page, not redirect")
	}
}
