// internal/app/state/list.go
//
// Package state holds the dashboard's fetched snapshots. Each holder owns
// exactly one view's data: ProductList for the list page, ProductDetail for
// one detail page. The holders share nothing with each other, and a
// snapshot is only ever replaced by the completion of the holder's own
// in-flight operation.
//
// Completions are generation-guarded: every Load bumps a counter and a
// completion whose generation is no longer current is discarded, so a
// fetch that outlives its caller cannot write a stale snapshot.
package state

import (
	"context"
	"sync"

	whopstore "github.com/dalemusser/whopdash/internal/app/store/whop"
	"github.com/dalemusser/whopdash/internal/domain/models"
)

// ProductList holds the list view's snapshot: the ordered product sequence
// and the parallel active-user mapping. The two are always replaced
// together; a failed load records its message and leaves both untouched.
type ProductList struct {
	store *whopstore.Store

	mu        sync.Mutex
	gen       uint64
	products  []models.Product
	active    map[string]int
	lastErr   string
	observers []Observer
}

// ListSnapshot is one consistent view of the held list state.
type ListSnapshot struct {
	Products        []models.Product
	ActiveByProduct map[string]int
	LastError       string
}

// NewProductList creates an empty holder backed by the given store.
func NewProductList(store *whopstore.Store) *ProductList {
	return &ProductList{
		store:    store,
		products: []models.Product{},
		active:   map[string]int{},
	}
}

// Subscribe registers an observer for future load completions.
func (l *ProductList) Subscribe(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

// Load fetches the product collection and applies it as the new snapshot.
// On failure the previous snapshot stays in place and the error message is
// recorded. The returned error is this call's own outcome either way.
//
// Concurrent Loads race; the snapshot ends up holding whichever completion
// was still current when it resolved (stale completions are discarded and
// do not notify observers).
func (l *ProductList) Load(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	res, err := l.store.Products(ctx)

	l.mu.Lock()
	if gen != l.gen {
		// A newer Load superseded this one while it was in flight.
		l.mu.Unlock()
		return err
	}

	var observers []Observer
	if err != nil {
		l.lastErr = err.Error()
		observers = append(observers, l.observers...)
		msg := l.lastErr
		l.mu.Unlock()
		notify(observers, func(o Observer) { o.OnFailed(msg) })
		return err
	}

	l.products = res.Products
	l.active = res.ActiveByProduct
	l.lastErr = ""
	count := len(l.products)
	observers = append(observers, l.observers...)
	l.mu.Unlock()

	notify(observers, func(o Observer) { o.OnLoaded(count) })
	return nil
}

// Snapshot returns the held products, counts, and last error as one
// consistent unit. Callers must treat the returned slice and map as
// read-only.
func (l *ProductList) Snapshot() ListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ListSnapshot{
		Products:        l.products,
		ActiveByProduct: l.active,
		LastError:       l.lastErr,
	}
}

// ActiveUsers returns the active-user count for a product id, defaulting
// to 0 for ids the mapping does not mention.
func (l *ProductList) ActiveUsers(productID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active[productID]
}
