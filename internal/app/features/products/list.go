// internal/app/features/products/list.go
package products

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/dalemusser/whopdash/internal/app/system/htmlsanitize"
	"github.com/dalemusser/whopdash/internal/app/system/timeouts"
	"github.com/dalemusser/whopdash/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /products – product list                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeList refreshes the shared list snapshot from the Whop API and
// renders it. A failed refresh keeps whatever the snapshot held before and
// shows the error alongside it.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "load products")
	defer cancel()

	if err := h.List.Load(ctx); err != nil {
		h.ErrLog.LogError(r, err, "load products")
		h.Flash.Failure(w, r, "Failed to load products: "+htmlsanitize.Text(err.Error()))
	}

	snap := h.List.Snapshot()
	if snap.LastError == "" {
		h.Flash.Success(w, r, fmt.Sprintf("Loaded %d products successfully", len(snap.Products)))
	}

	rows := make([]productRow, 0, len(snap.Products))
	for i, p := range snap.Products {
		label := p.Visibility
		if label == "" {
			label = "—"
		}
		rows = append(rows, productRow{
			No:             i + 1,
			ID:             p.ID,
			Title:          p.DisplayTitle(),
			Visibility:     label,
			VisibilityKind: p.VisibilityKind(),
			ActiveUsers:    snap.ActiveByProduct[p.ID],
		})
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, "Products", "/products"),
		Rows:   rows,
		Total:  len(rows),
		Error:  template.HTML(htmlsanitize.Sanitize(snap.LastError)),
	}

	templates.Render(w, r, "products_list", data)
}
