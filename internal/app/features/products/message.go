// internal/app/features/products/message.go
package products

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/whopdash/internal/app/state"
	"github.com/dalemusser/whopdash/internal/app/system/htmlsanitize"
	"github.com/dalemusser/whopdash/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

/*─────────────────────────────────────────────────────────────────────────────*
| POST /products/{productID}/message – broadcast to memberships              |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeSendMessage broadcasts the composed message to every membership of
// the product. On success it redirects back to the detail page with a flash
// so the composer comes back empty; on failure it re-renders the page with
// the message echoed back so the user can retry.
func (h *Handler) ServeSendMessage(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	composed := r.FormValue("message")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "send message")
	defer cancel()

	detail := state.NewProductDetail(h.Whop)
	res, err := detail.SendMessage(ctx, productID, composed)
	if err != nil {
		if errors.Is(err, state.ErrEmptyMessage) {
			h.renderDetail(w, r, productID, composed, "Message cannot be empty")
			return
		}
		h.ErrLog.LogError(r, err, "send message")
		h.renderDetail(w, r, productID, composed, "Failed to send message: "+htmlsanitize.Text(err.Error()))
		return
	}

	h.Flash.Success(w, r, fmt.Sprintf("Message sent to %d member(s). %d failed.", res.SuccessCount, res.ErrorCount))
	http.Redirect(w, r, "/products/"+productID, http.StatusSeeOther)
}
