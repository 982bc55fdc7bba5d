// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig is where everything specific to this application lives:
// the Whop API endpoint, HTTP client tuning, and cookie settings for
// flash messages.
type AppConfig struct {
	// Whop API configuration
	WhopBaseURL string        // Base URL of the Whop API (e.g., http://localhost:1001)
	WhopTimeout time.Duration // Overall HTTP client timeout for Whop API calls

	// Flash-message cookie configuration
	SessionKey    string // Secret key for signing the flash cookie (must be strong in production)
	SessionName   string // Cookie name for flashes (default: whopdash-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Branding
	SiteName string // Display name shown in the page chrome
}
