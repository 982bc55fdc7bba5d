// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for WhopDash.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: whop_base_url, session_name, etc.
//   - Environment variables: WHOPDASH_WHOP_BASE_URL, WHOPDASH_SESSION_NAME, etc.
//   - Command-line flags: --whop_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "whop_base_url", Default: "http://localhost:1001", Desc: "Base URL of the Whop API"},
	{Name: "whop_timeout", Default: "15s", Desc: "Overall HTTP client timeout for Whop API calls (e.g., 15s, 1m)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Flash cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "whopdash-session", Desc: "Flash cookie name"},
	{Name: "session_domain", Default: "", Desc: "Flash cookie domain (blank means current host)"},

	{Name: "site_name", Default: "Whop Dashboard", Desc: "Display name shown in the page chrome"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, WHOPDASH_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WHOPDASH", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		WhopBaseURL: appValues.String("whop_base_url"),
		WhopTimeout: appValues.Duration("whop_timeout", 15*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// WhopDash validates the Whop API base URL format to catch configuration
// errors early, before the first request goes out.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.WhopBaseURL)
	if err != nil {
		logger.Error("invalid Whop API base URL", zap.Error(err))
		return fmt.Errorf("invalid whop_base_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("whop_base_url must be an absolute http(s) URL, got %q", appCfg.WhopBaseURL)
	}

	if appCfg.WhopTimeout <= 0 {
		return fmt.Errorf("whop_timeout must be positive, got %s", appCfg.WhopTimeout)
	}

	return nil
}
