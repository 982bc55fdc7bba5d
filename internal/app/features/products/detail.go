// internal/app/features/products/detail.go
package products

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/whopdash/internal/app/state"
	"github.com/dalemusser/whopdash/internal/app/system/htmlsanitize"
	"github.com/dalemusser/whopdash/internal/app/system/timeouts"
	"github.com/dalemusser/whopdash/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /products/{productID} – product detail                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDetail fetches one product with its memberships and renders the
// detail page. Each request owns its own detail snapshot; nothing here
// touches the list page's state.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	h.renderDetail(w, r, productID, "", "")
}

// renderDetail is shared between the GET page and failed sends, which
// re-render the page with the composed message echoed back and a send
// error shown next to the composer.
func (h *Handler) renderDetail(w http.ResponseWriter, r *http.Request, productID, composed, sendErr string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "load product detail")
	defer cancel()

	detail := state.NewProductDetail(h.Whop)
	if err := detail.Load(ctx, productID); err != nil {
		h.ErrLog.LogError(r, err, "load product detail")
	}
	snap := detail.Snapshot()

	memberships := make([]membershipRow, 0, len(snap.Memberships))
	for _, m := range snap.Memberships {
		memberships = append(memberships, membershipRow{ID: m.ID, User: m.User, Email: m.Email})
	}

	data := detailData{
		BaseVM:          viewdata.NewBaseVM(w, r, "Product Details", "/products"),
		Phase:           snap.Phase.String(),
		FetchError:      template.HTML(htmlsanitize.Sanitize(snap.LastError)),
		ProductID:       productID,
		Memberships:     memberships,
		MembershipCount: len(memberships),
		ComposedMessage: composed,
		SendError:       template.HTML(htmlsanitize.Sanitize(sendErr)),
	}

	if p := snap.Product; p != nil {
		label := p.Visibility
		if label == "" {
			label = "N/A"
		}
		data.HasProduct = true
		data.ProductTitle = p.Title
		data.Visibility = label
		data.VisibilityKind = p.VisibilityKind()
		data.ActiveUsers = p.ActiveUsers
	}

	templates.Render(w, r, "product_detail", data)
}
