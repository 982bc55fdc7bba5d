// internal/app/features/products/types.go
package products

import (
	"html/template"

	"github.com/dalemusser/whopdash/internal/app/system/viewdata"
)

// productRow is one row of the list table.
type productRow struct {
	No             int
	ID             string
	Title          string
	Visibility     string // display label; "—" when the backend sent none
	VisibilityKind string // visible | hidden | unknown, drives badge styling
	ActiveUsers    int
}

// listData is the view model for the products list page.
type listData struct {
	viewdata.BaseVM
	Rows  []productRow
	Total int
	Error template.HTML
}

// membershipRow is one row of the memberships table.
type membershipRow struct {
	ID    string
	User  string
	Email string
}

// detailData is the view model for the product detail page.
type detailData struct {
	viewdata.BaseVM

	Phase      string // not-loaded | pending | loaded | failed
	FetchError template.HTML

	HasProduct     bool
	ProductID      string // from the URL; also the send-form target
	ProductTitle   string
	Visibility     string
	VisibilityKind string
	ActiveUsers    int

	Memberships     []membershipRow
	MembershipCount int

	// Send-message composer state
	ComposedMessage string
	SendError       template.HTML
}
