// internal/domain/models/product.go
package models

// Product is one listed resource from the Whop API. The backend owns the
// record entirely; the dashboard only holds point-in-time snapshots of it.
//
// Every field except ID is optional in the wire format. Visibility is an
// open string set: "visible" and "hidden" are the values observed, but the
// backend may send anything (or nothing), so no enum type exists here.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
	ActiveUsers int    `json:"activeUsers,omitempty"`
}

// Known visibility values. Anything else renders as "unknown".
const (
	VisibilityVisible = "visible"
	VisibilityHidden  = "hidden"
)

// DisplayTitle returns the title, or a fallback label when the backend
// sent none.
func (p Product) DisplayTitle() string {
	if p.Title == "" {
		return "Untitled Product"
	}
	return p.Title
}

// VisibilityKind buckets the open visibility string for display purposes:
// "visible", "hidden", or "unknown" for absent/unrecognized values.
func (p Product) VisibilityKind() string {
	switch p.Visibility {
	case VisibilityVisible, VisibilityHidden:
		return p.Visibility
	default:
		return "unknown"
	}
}
