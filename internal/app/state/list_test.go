package state_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/whopdash/internal/app/state"
	whopstore "github.com/dalemusser/whopdash/internal/app/store/whop"
	"github.com/dalemusser/whopdash/internal/testutil"
)

// recordingObserver collects load notifications for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	loaded []int
	failed []string
}

func (o *recordingObserver) OnLoaded(count int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loaded = append(o.loaded, count)
}

func (o *recordingObserver) OnFailed(msg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failed = append(o.failed, msg)
}

func (o *recordingObserver) counts() (loaded, failed int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.loaded), len(o.failed)
}

// panickyObserver always panics, to prove notification is isolated.
type panickyObserver struct{}

func (panickyObserver) OnLoaded(int)    { panic("observer blew up") }
func (panickyObserver) OnFailed(string) { panic("observer blew up") }

func TestLoad_ReplacesSnapshotAtomically(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	products := testutil.ProductFixtures(3)
	srv.SetProducts(products...)
	srv.SetActive(products[0].ID, 7)

	list := state.NewProductList(whopstore.New(srv.URL(), nil))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := list.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	snap := list.Snapshot()
	if len(snap.Products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(snap.Products))
	}
	if snap.LastError != "" {
		t.Errorf("expected no error recorded, got %q", snap.LastError)
	}
	if got := list.ActiveUsers(products[0].ID); got != 7 {
		t.Errorf("expected 7 active users, got %d", got)
	}
	if got := list.ActiveUsers(products[1].ID); got != 0 {
		t.Errorf("expected 0 active users for unmapped id, got %d", got)
	}
}

func TestLoad_FailurePreservesPriorSnapshot(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	products := testutil.ProductFixtures(2)
	srv.SetProducts(products...)

	list := state.NewProductList(whopstore.New(srv.URL(), nil))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := list.Load(ctx); err != nil {
		t.Fatalf("first Load: %v", err)
	}

	srv.FailList("upstream exploded")
	if err := list.Load(ctx); err == nil {
		t.Fatal("expected second Load to fail")
	}

	snap := list.Snapshot()
	if len(snap.Products) != 2 {
		t.Errorf("failed load must keep the prior products, got %d", len(snap.Products))
	}
	if snap.LastError == "" {
		t.Error("expected the failure message to be recorded")
	}

	// A later success clears the recorded error again.
	srv.FailList("")
	if err := list.Load(ctx); err != nil {
		t.Fatalf("third Load: %v", err)
	}
	if snap := list.Snapshot(); snap.LastError != "" {
		t.Errorf("expected error cleared after successful load, got %q", snap.LastError)
	}
}

func TestLoad_NotifiesObservers(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	srv.SetProducts(testutil.ProductFixtures(4)...)

	list := state.NewProductList(whopstore.New(srv.URL(), nil))
	obs := &recordingObserver{}
	list.Subscribe(obs)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := list.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded, failed := obs.counts(); loaded != 1 || failed != 0 {
		t.Fatalf("expected 1 loaded / 0 failed notifications, got %d/%d", loaded, failed)
	}
	obs.mu.Lock()
	got := obs.loaded[0]
	obs.mu.Unlock()
	if got != 4 {
		t.Errorf("expected loaded count 4, got %d", got)
	}

	srv.FailList("boom")
	_ = list.Load(ctx)
	if loaded, failed := obs.counts(); loaded != 1 || failed != 1 {
		t.Errorf("expected 1 loaded / 1 failed notifications, got %d/%d", loaded, failed)
	}
}

func TestLoad_PanickingObserverDoesNotStopOthers(t *testing.T) {
	srv := testutil.NewWhopServer(t)
	srv.SetProducts(testutil.ProductFixtures(1)...)

	list := state.NewProductList(whopstore.New(srv.URL(), nil))
	obs := &recordingObserver{}
	list.Subscribe(panickyObserver{})
	list.Subscribe(obs)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := list.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded, _ := obs.counts(); loaded != 1 {
		t.Errorf("expected the second observer to still be notified, got %d notifications", loaded)
	}
}

func TestLoad_StaleCompletionDiscarded(t *testing.T) {
	// The first request blocks until released; the second answers right
	// away with a different product set. The snapshot must end up holding
	// the later load's data even though the earlier one resolves last.
	firstArrived := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		title := "second"
		if n == 1 {
			close(firstArrived)
			<-release
			title = "first"
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products":        []map[string]string{{"id": "prod_1", "title": title}},
			"activeByProduct": map[string]int{},
		})
	}))
	defer backend.Close()

	list := state.NewProductList(whopstore.New(backend.URL, nil))
	obs := &recordingObserver{}
	list.Subscribe(obs)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = list.Load(ctx)
	}()

	<-firstArrived
	if err := list.Load(ctx); err != nil {
		t.Fatalf("second Load: %v", err)
	}

	close(release)
	<-done

	snap := list.Snapshot()
	if len(snap.Products) != 1 || snap.Products[0].Title != "second" {
		t.Errorf("expected the later load to win, got %+v", snap.Products)
	}
	if loaded, failed := obs.counts(); loaded != 1 || failed != 0 {
		t.Errorf("stale completion must not notify; got %d loaded / %d failed", loaded, failed)
	}
}
