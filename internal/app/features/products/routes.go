// internal/app/features/products/routes.go
package products

import "github.com/go-chi/chi/v5"

// Routes mounts the product dashboard pages.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{productID}", h.ServeDetail)
	r.Post("/{productID}/message", h.ServeSendMessage)
	return r
}
