// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/whopdash/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ProductFixture returns a product with a freshly minted opaque id.
func ProductFixture(title, visibility string) models.Product {
	return models.Product{
		ID:         "prod_" + uuid.New().String()[:8],
		Title:      title,
		Visibility: visibility,
	}
}

// ProductFixtures returns n visible products with distinct titles.
func ProductFixtures(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, ProductFixture(fmt.Sprintf("Product %d", i+1), models.VisibilityVisible))
	}
	return out
}

// MembershipFixture returns a membership with minted membership and user ids.
func MembershipFixture(email string) models.Membership {
	n := uuid.New().String()[:8]
	return models.Membership{
		ID:    "mem_" + n,
		User:  "user_" + n,
		Email: email,
	}
}

// TestContext returns a context with a generous timeout for test operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
