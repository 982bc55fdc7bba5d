// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	whopstore "github.com/dalemusser/whopdash/internal/app/store/whop"
)

// DBDeps holds back-end dependencies for the app.
// WhopDash keeps no database of its own; the Whop API is the only backend.
type DBDeps struct {
	Whop *whopstore.Store
}
