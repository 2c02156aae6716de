// ABOUTME: Serve-time asset path rewriting driven by the persisted hash key.
// ABOUTME: A missing key file disables cache busting and Rewrite becomes identity.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// LoadKey reads the single-line hash key file written by the build step.
// A missing file is not an error: it means the build ran with hashing
// disabled, and cache busting is simply off.
func LoadKey(keyFile string) (string, error) {
	data, err := os.ReadFile(keyFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading hash key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Resolver rewrites asset URLs to their hash-named variants. The key is
// loaded once at startup and never changes within a running process.
type Resolver struct {
	key string
}

// NewResolver returns a resolver for the given key. An empty key yields an
// identity resolver.
func NewResolver(key string) *Resolver {
	return &Resolver{key: key}
}

// Key returns the loaded hash key, or "" when cache busting is disabled.
func (r *Resolver) Key() string {
	return r.key
}

// Rewrite inserts the hash key immediately before the final extension:
// /style.css becomes /style.<key>.css. Paths without an extension are
// returned unchanged, as is everything when no key is loaded.
func (r *Resolver) Rewrite(p string) string {
	if r.key == "" {
		return p
	}
	return insertKey(p, r.key)
}

// IsHashed reports whether the final path element structurally carries the
// key as its second-to-last dot segment (name.<key>.ext). This is stricter
// than a substring test on purpose: a file that merely contains the key
// somewhere in its name must not be tagged immutable.
func (r *Resolver) IsHashed(p string) bool {
	if r.key == "" {
		return false
	}
	segments := strings.Split(path.Base(p), ".")
	return len(segments) >= 3 && segments[len(segments)-2] == r.key
}

// insertKey splits name on ".", inserts key as the second-to-last segment,
// and rejoins. Names without a "." pass through unchanged.
func insertKey(name, key string) string {
	segments := strings.Split(name, ".")
	if len(segments) < 2 {
		return name
	}
	ext := segments[len(segments)-1]
	segments[len(segments)-1] = key
	return strings.Join(append(segments, ext), ".")
}
