// internal/app/features/products/handler.go
package products

import (
	uierrors "github.com/dalemusser/whopdash/internal/app/features/errors"
	"github.com/dalemusser/whopdash/internal/app/state"
	whopstore "github.com/dalemusser/whopdash/internal/app/store/whop"
	"github.com/dalemusser/whopdash/internal/app/system/flash"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for the product dashboard pages.
// It holds the Whop API store, the shared list snapshot holder, and the
// loggers provided by WAFFLE DBDeps / Startup.
type Handler struct {
	Whop   *whopstore.Store
	List   *state.ProductList
	Flash  *flash.Manager
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(store *whopstore.Store, flashMgr *flash.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	list := state.NewProductList(store)
	list.Subscribe(state.LogObserver{Log: logger})
	return &Handler{
		Whop:   store,
		List:   list,
		Flash:  flashMgr,
		Log:    logger,
		ErrLog: errLog,
	}
}
