// ABOUTME: Tests for the template engine helpers and layout composition without HTTP.
// ABOUTME: Covers asset rewriting in the head, hashtag joining, and date formatting.
package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/inkpress/inkpress/assets"
	"github.com/inkpress/inkpress/content"
)

func TestHashtags(t *testing.T) {
	if got := hashtags([]string{"go", "web", "notes"}); got != "#go #web #notes" {
		t.Errorf("hashtags = %q", got)
	}
	if got := hashtags(nil); got != "" {
		t.Errorf("hashtags(nil) = %q", got)
	}
}

func TestLongDate(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	if got := longDate(ts); got != "March 9, 2024 · 2:05 PM" {
		t.Errorf("longDate = %q", got)
	}
}

func TestRenderToWrapsLayout(t *testing.T) {
	engine, err := NewTemplateEngine(assets.NewResolver("abc123"))
	if err != nil {
		t.Fatalf("NewTemplateEngine failed: %v", err)
	}

	item := &content.Item{
		Title:     "A Post",
		Slug:      "a-post",
		Short:     "Summary here.",
		CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		Tags:      []string{"go"},
	}

	var buf bytes.Buffer
	data := PageData{
		Title:       "A Post · testsite",
		Description: "Summary here.",
		SiteName:    "testsite",
		Item:        item,
	}
	if err := engine.RenderTo(&buf, "read.html", data); err != nil {
		t.Fatalf("RenderTo failed: %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "<title>A Post · testsite</title>") {
		t.Error("expected page title in layout head")
	}
	if !strings.Contains(html, "/style.abc123.css") {
		t.Error("expected hashed stylesheet path via asset helper")
	}
	if !strings.Contains(html, `<nav class="site-nav">`) {
		t.Error("expected shared nav from layout")
	}
	if !strings.Contains(html, "#go") {
		t.Error("expected hashtag rendering")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	engine, err := NewTemplateEngine(assets.NewResolver(""))
	if err != nil {
		t.Fatalf("NewTemplateEngine failed: %v", err)
	}

	var buf bytes.Buffer
	if err := engine.RenderTo(&buf, "nope.html", PageData{}); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
