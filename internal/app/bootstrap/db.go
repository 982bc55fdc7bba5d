// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"net/http"

	whopstore "github.com/dalemusser/whopdash/internal/app/store/whop"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the Whop API client store. There is no database to
// dial, so "connecting" is constructing the HTTP client; a failed
// reachability probe is logged but does not abort startup, since the
// backend may come up after us.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client := &http.Client{Timeout: appCfg.WhopTimeout}
	store := whopstore.New(appCfg.WhopBaseURL, client)

	if _, err := store.Products(ctx); err != nil {
		logger.Warn("whop api not reachable at startup",
			zap.String("base_url", store.BaseURL()),
			zap.Error(err))
	} else {
		logger.Info("whop api reachable", zap.String("base_url", store.BaseURL()))
	}

	return DBDeps{Whop: store}, nil
}

// EnsureSchema is a no-op: all product and membership data lives behind
// the Whop API, which owns its own schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
