// ABOUTME: Build-time asset hashing: computes a truncated SHA-256 content hash of the
// ABOUTME: CSS bundle, persists it to a key file, and writes hash-named asset copies.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// DefaultHashLength is the number of hex characters kept from the digest.
// Six characters is plenty for a handful of assets that change rarely.
const DefaultHashLength = 6

// HashFile returns the truncated hex SHA-256 digest of the file at path.
func HashFile(path string, length int) (string, error) {
	if length <= 0 {
		length = DefaultHashLength
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening asset: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing asset: %w", err)
	}

	sum := hex.EncodeToString(h.Sum(nil))
	if length > len(sum) {
		length = len(sum)
	}
	return sum[:length], nil
}

// WriteKeyFile persists the hash key as a single line.
func WriteKeyFile(keyFile, key string) error {
	if err := os.WriteFile(keyFile, []byte(key+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing hash key file: %w", err)
	}
	return nil
}

// BuildHashedAssets hashes the first named asset (the CSS bundle), writes the
// key file, and copies every named asset to its hash-suffixed variant next to
// the original (style.css -> style.<key>.css). Returns the key.
func BuildHashedAssets(publicDir string, names []string, keyFile string, length int) (string, error) {
	if len(names) == 0 {
		return "", errors.New("no assets named for hashing")
	}

	key, err := HashFile(filepath.Join(publicDir, names[0]), length)
	if err != nil {
		return "", err
	}

	if err := WriteKeyFile(keyFile, key); err != nil {
		return "", err
	}

	for _, name := range names {
		src := filepath.Join(publicDir, name)
		dst := filepath.Join(publicDir, insertKey(name, key))
		if err := copyFile(src, dst); err != nil {
			return "", fmt.Errorf("copying %s: %w", name, err)
		}
		log.Printf("assets: wrote %s", dst)
	}

	return key, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
