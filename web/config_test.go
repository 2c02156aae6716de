// ABOUTME: Tests for environment-driven configuration covering defaults,
// ABOUTME: overrides, and the boolean asset-hashing toggle.
package web

import (
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"INKPRESS_BIND", "INKPRESS_CONTENT_DIR", "INKPRESS_PUBLIC_DIR",
		"INKPRESS_KEY_FILE", "INKPRESS_SITE_NAME", "INKPRESS_SITE_DESCRIPTION",
		"INKPRESS_HASH_ASSETS",
	} {
		t.Setenv(key, "")
	}
}

func TestConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Bind != "127.0.0.1:8080" {
		t.Errorf("Bind = %q", cfg.Bind)
	}
	if cfg.ContentDir != "posts" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
	if cfg.PublicDir != "public" {
		t.Errorf("PublicDir = %q", cfg.PublicDir)
	}
	if cfg.KeyFile != filepath.Join("public", ".hashkey") {
		t.Errorf("KeyFile = %q", cfg.KeyFile)
	}
	if cfg.HashAssets {
		t.Error("HashAssets must default to off")
	}
}

func TestConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("INKPRESS_BIND", "0.0.0.0:9999")
	t.Setenv("INKPRESS_PUBLIC_DIR", "/srv/www")
	t.Setenv("INKPRESS_SITE_NAME", "my corner")

	cfg := ConfigFromEnv()
	if cfg.Bind != "0.0.0.0:9999" {
		t.Errorf("Bind = %q", cfg.Bind)
	}
	if cfg.PublicDir != "/srv/www" {
		t.Errorf("PublicDir = %q", cfg.PublicDir)
	}
	if cfg.KeyFile != filepath.Join("/srv/www", ".hashkey") {
		t.Errorf("KeyFile should follow the public dir, got %q", cfg.KeyFile)
	}
	if cfg.SiteName != "my corner" {
		t.Errorf("SiteName = %q", cfg.SiteName)
	}
}

func TestConfigHashToggle(t *testing.T) {
	clearEnv(t)

	for _, v := range []string{"true", "1", "yes"} {
		t.Setenv("INKPRESS_HASH_ASSETS", v)
		if !ConfigFromEnv().HashAssets {
			t.Errorf("HashAssets should be on for %q", v)
		}
	}
	for _, v := range []string{"", "false", "0", "off"} {
		t.Setenv("INKPRESS_HASH_ASSETS", v)
		if ConfigFromEnv().HashAssets {
			t.Errorf("HashAssets should be off for %q", v)
		}
	}
}
