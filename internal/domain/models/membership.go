// internal/domain/models/membership.go
package models

// Membership records one user's association with a Product. Memberships are
// only ever fetched through a product's detail endpoint; the owning product
// id is implied by the fetch, not embedded in the record.
type Membership struct {
	ID    string `json:"id"`
	User  string `json:"user,omitempty"`
	Email string `json:"email,omitempty"`
}
