// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/whopdash/internal/app/system/flash"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is used until Init is called with a configured name.
const DefaultSiteName = "Whop Dashboard"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site chrome
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Pending one-shot notifications, consumed by the layout
	Flashes []flash.Message
}

var (
	siteName = DefaultSiteName
	flashMgr *flash.Manager
)

// Init sets the site name and flash manager used by NewBaseVM.
// Call this once at startup from bootstrap.
func Init(name string, flashes *flash.Manager) {
	if name != "" {
		siteName = name
	}
	flashMgr = flashes
}

// NewBaseVM creates a fully populated BaseVM for a page. Pending flashes
// are taken (and thereby cleared) as part of building the view model, so
// call it exactly once per rendered page.
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	vm := BaseVM{
		SiteName:    siteName,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
	if flashMgr != nil {
		vm.Flashes = flashMgr.Take(w, r)
	}
	return vm
}
