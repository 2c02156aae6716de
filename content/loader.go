// ABOUTME: Flat-file content loader: scans a directory of Markdown files, splits the
// ABOUTME: fenced YAML front matter from the body, and builds the date-sorted Index.
package content

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// splitToken separates the fenced front-matter block from the Markdown body.
const splitToken = "%%split%%"

// Load errors. Each is wrapped with the offending file name; any single bad
// file aborts the whole load (the content set is small and operator-curated,
// a partial index would only hide mistakes).
var (
	ErrMissingDelimiter     = errors.New("missing %%split%% delimiter")
	ErrMalformedFrontMatter = errors.New("malformed front matter")
	ErrMissingField         = errors.New("missing required front matter field")
)

// frontMatter is the YAML envelope at the top of every content file.
// Timestamps stay strings here so parse failures name the field.
type frontMatter struct {
	Title     string   `yaml:"title"`
	Slug      string   `yaml:"slug"`
	Short     string   `yaml:"short"`
	CreatedAt string   `yaml:"createdAt"`
	UpdatedAt string   `yaml:"updatedAt"`
	Tags      []string `yaml:"tags"`
}

// Load reads every .md file directly under dir (non-recursive), parses each
// into an Item, and returns the Index sorted ascending by CreatedAt.
// Duplicate slugs keep the last-inserted item and log a warning.
func Load(dir string) (*Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory: %w", err)
	}

	var items []*Item
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}

		item, err := parseItem(string(raw))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		log.Printf("content: loaded file=%s slug=%s created=%s", entry.Name(), item.Slug, item.CreatedAt.Format(time.RFC3339))
		items = append(items, item)
	}

	// Stable sort keeps enumeration order for identical timestamps.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return newIndex(items), nil
}

// newIndex builds the slug map from already-sorted items. On a slug
// collision the later item wins and the earlier one is dropped from the
// listing as well, so the map and the ordered slice always agree.
func newIndex(items []*Item) *Index {
	bySlug := make(map[string]*Item, len(items))
	for _, it := range items {
		if _, ok := bySlug[it.Slug]; ok {
			log.Printf("content: WARNING duplicate slug %q, keeping the newer article", it.Slug)
		}
		bySlug[it.Slug] = it
	}

	kept := items[:0:0]
	for _, it := range items {
		if bySlug[it.Slug] == it {
			kept = append(kept, it)
		}
	}

	return &Index{items: kept, bySlug: bySlug}
}

// parseItem splits one file into front matter and body and validates both.
func parseItem(raw string) (*Item, error) {
	head, body, err := splitParts(raw)
	if err != nil {
		return nil, err
	}

	inner, err := stripFence(head)
	if err != nil {
		return nil, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(inner), &fm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrontMatter, err)
	}

	for field, value := range map[string]string{
		"title":     fm.Title,
		"slug":      fm.Slug,
		"short":     fm.Short,
		"createdAt": fm.CreatedAt,
		"updatedAt": fm.UpdatedAt,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
		}
	}
	if len(fm.Tags) == 0 {
		return nil, fmt.Errorf("%w: tags", ErrMissingField)
	}

	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: createdAt: %v", ErrMalformedFrontMatter, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, fm.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: updatedAt: %v", ErrMalformedFrontMatter, err)
	}

	return &Item{
		Title:     fm.Title,
		Slug:      fm.Slug,
		Short:     fm.Short,
		Body:      body,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Tags:      fm.Tags,
	}, nil
}

// splitParts divides raw on the split token into exactly two non-empty
// trimmed parts: the fenced metadata block and the Markdown body.
func splitParts(raw string) (head, body string, err error) {
	pieces := strings.Split(raw, splitToken)
	var parts []string
	for _, p := range pieces {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(pieces) == 1 {
		return "", "", ErrMissingDelimiter
	}
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: expected metadata and body, got %d parts", ErrMissingDelimiter, len(parts))
	}
	return parts[0], parts[1], nil
}

// stripFence removes the first and last line of the metadata block, which
// must be code fence markers wrapping the YAML.
func stripFence(block string) (string, error) {
	lines := strings.Split(block, "\n")
	if len(lines) < 3 || !strings.HasPrefix(lines[0], "```") || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return "", fmt.Errorf("%w: metadata block is not fenced", ErrMalformedFrontMatter)
	}
	return strings.Join(lines[1:len(lines)-1], "\n"), nil
}
