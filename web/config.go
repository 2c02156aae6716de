// ABOUTME: Server and build configuration loaded from INKPRESS_* environment variables.
// ABOUTME: Every knob has a sensible default so `inkpress serve` works from a checkout.
package web

import (
	"os"
	"path/filepath"
)

// Config holds all runtime configuration for the serve and build phases.
type Config struct {
	Bind            string // listen address (INKPRESS_BIND, default: 127.0.0.1:8080)
	ContentDir      string // Markdown content directory (INKPRESS_CONTENT_DIR, default: posts)
	PublicDir       string // static asset directory (INKPRESS_PUBLIC_DIR, default: public)
	KeyFile         string // hash key file path (INKPRESS_KEY_FILE, default: <public>/.hashkey)
	SiteName        string // site title shown in nav and page titles (INKPRESS_SITE_NAME)
	SiteDescription string // default meta description (INKPRESS_SITE_DESCRIPTION)
	HashAssets      bool   // build-phase toggle (INKPRESS_HASH_ASSETS, default: off)
}

// ConfigFromEnv loads configuration from INKPRESS_* environment variables
// with defaults suitable for running out of the repository root.
func ConfigFromEnv() Config {
	publicDir := envOrDefault("INKPRESS_PUBLIC_DIR", "public")

	return Config{
		Bind:            envOrDefault("INKPRESS_BIND", "127.0.0.1:8080"),
		ContentDir:      envOrDefault("INKPRESS_CONTENT_DIR", "posts"),
		PublicDir:       publicDir,
		KeyFile:         envOrDefault("INKPRESS_KEY_FILE", filepath.Join(publicDir, ".hashkey")),
		SiteName:        envOrDefault("INKPRESS_SITE_NAME", "inkpress"),
		SiteDescription: envOrDefault("INKPRESS_SITE_DESCRIPTION", "Notes, essays, and projects."),
		HashAssets:      envBool("INKPRESS_HASH_ASSETS"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	}
	return false
}
