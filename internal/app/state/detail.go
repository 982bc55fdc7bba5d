// internal/app/state/detail.go
package state

import (
	"context"
	"errors"
	"strings"
	"sync"

	whopstore "github.com/dalemusser/whopdash/internal/app/store/whop"
	"github.com/dalemusser/whopdash/internal/domain/models"
)

// Phase is the observable lifecycle of a detail fetch. It distinguishes
// "no data because nothing was fetched yet", "no data because the fetch is
// still in flight", "no data because the fetch failed", and "fetched, and
// the backend had no product".
type Phase int

const (
	PhaseNotLoaded Phase = iota
	PhasePending
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "not-loaded"
	}
}

var (
	// ErrEmptyMessage is returned by SendMessage when the text trims to
	// nothing. No network call is made in that case.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrSendInFlight is returned when a send is invoked while an earlier
	// one on the same holder has not resolved yet.
	ErrSendInFlight = errors.New("a message send is already in progress")
)

// ProductDetail holds one detail view's snapshot: the product (possibly
// absent even on success) and its memberships. A holder belongs to a single
// view instance; create a fresh one per mount.
type ProductDetail struct {
	store *whopstore.Store

	mu          sync.Mutex
	gen         uint64
	phase       Phase
	product     *models.Product
	memberships []models.Membership
	lastErr     string
	sending     bool
}

// DetailSnapshot is one consistent view of the held detail state.
type DetailSnapshot struct {
	Phase       Phase
	Product     *models.Product
	Memberships []models.Membership
	LastError   string
}

// NewProductDetail creates an empty holder backed by the given store.
func NewProductDetail(store *whopstore.Store) *ProductDetail {
	return &ProductDetail{
		store:       store,
		phase:       PhaseNotLoaded,
		memberships: []models.Membership{},
	}
}

// Load fetches the product and its memberships, replacing both together.
// Failure leaves the holder in PhaseFailed with no product, which is
// distinct from a successful fetch that returned no product
// (PhaseLoaded with a nil Product).
func (d *ProductDetail) Load(ctx context.Context, productID string) error {
	d.mu.Lock()
	d.gen++
	gen := d.gen
	d.phase = PhasePending
	d.lastErr = ""
	d.mu.Unlock()

	res, err := d.store.ProductDetail(ctx, productID)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return err
	}

	if err != nil {
		d.phase = PhaseFailed
		d.product = nil
		d.memberships = []models.Membership{}
		d.lastErr = err.Error()
		return err
	}

	d.phase = PhaseLoaded
	d.product = res.Product
	d.memberships = res.Memberships
	return nil
}

// Snapshot returns the held phase, product, memberships, and last error as
// one consistent unit.
func (d *ProductDetail) Snapshot() DetailSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DetailSnapshot{
		Phase:       d.phase,
		Product:     d.product,
		Memberships: d.memberships,
		LastError:   d.lastErr,
	}
}

// SendMessage broadcasts text to every member of the product and returns
// the backend's aggregate counts.
//
// The text is trimmed first; if nothing remains, ErrEmptyMessage is
// returned and no network call happens. While a send is in flight, further
// invocations on this holder are rejected with ErrSendInFlight; the caller
// is expected to keep the trigger disabled until the prior call resolves.
func (d *ProductDetail) SendMessage(ctx context.Context, productID, text string) (whopstore.SendResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return whopstore.SendResult{}, ErrEmptyMessage
	}

	d.mu.Lock()
	if d.sending {
		d.mu.Unlock()
		return whopstore.SendResult{}, ErrSendInFlight
	}
	d.sending = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.sending = false
		d.mu.Unlock()
	}()

	return d.store.SendMessage(ctx, productID, trimmed)
}
