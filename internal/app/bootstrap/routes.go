// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/whopdash/internal/app/features/errors"
	healthfeature "github.com/dalemusser/whopdash/internal/app/features/health"
	productsfeature "github.com/dalemusser/whopdash/internal/app/features/products"
	"github.com/dalemusser/whopdash/internal/app/system/flash"
	"github.com/dalemusser/whopdash/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend connections, and any
// Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the Whop API store bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// WhopDash initializes the template engine, wires the flash-message
// manager, and mounts the health and products feature routers. The root
// path redirects to the products list, which is the app's home page.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the flash manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	flashMgr := flash.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Shared view-model defaults for every rendered page.
	viewdata.Init(appCfg.SiteName, flashMgr)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Whop, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Product dashboard
	productsHandler := productsfeature.NewHandler(deps.Whop, flashMgr, errLog, logger)
	r.Mount("/products", productsfeature.Routes(productsHandler))

	// The products list is the home page.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/products", http.StatusFound)
	})

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
