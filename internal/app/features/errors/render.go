// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/whopdash/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderError shows a friendly error page with a message.
// If backURL is empty it falls back to the products list.
func RenderError(w http.ResponseWriter, r *http.Request, title, msg, backURL string) {
	if backURL == "" {
		backURL = "/products"
	}
	if title == "" {
		title = "Something went wrong"
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, title, backURL),
		Message: msg,
	}

	templates.Render(w, r, "error_page", data)
}
