// ABOUTME: Content data model for published articles loaded from flat Markdown files.
// ABOUTME: Index is immutable after construction and safe for lock-free concurrent reads.
package content

import "time"

// Item is one published article. All fields come from the file's YAML front
// matter except Body, which is the trimmed Markdown text after the split
// delimiter. Items are never mutated after Load returns.
type Item struct {
	Title     string
	Slug      string
	Short     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Tags      []string
}

// Index maps slugs to items and preserves ascending CreatedAt order.
// It is built once at startup and read without locking afterwards; if
// hot-reload is ever added, replace the whole Index rather than mutating it.
type Index struct {
	items  []*Item
	bySlug map[string]*Item
}

// Get returns the item for slug, or false if no such article exists.
func (idx *Index) Get(slug string) (*Item, bool) {
	it, ok := idx.bySlug[slug]
	return it, ok
}

// Items returns all articles oldest-first.
func (idx *Index) Items() []*Item {
	out := make([]*Item, len(idx.items))
	copy(out, idx.items)
	return out
}

// Newest returns all articles newest-first.
func (idx *Index) Newest() []*Item {
	out := make([]*Item, len(idx.items))
	for i, it := range idx.items {
		out[len(out)-1-i] = it
	}
	return out
}

// Len returns the number of distinct articles in the index.
func (idx *Index) Len() int {
	return len(idx.items)
}
