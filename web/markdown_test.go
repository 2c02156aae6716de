// ABOUTME: Tests for the Markdown conversion and sanitization pipeline, making sure
// ABOUTME: dangerous markup dies at the trust boundary while formatting survives.
package web

import (
	"strings"
	"testing"
)

func TestRenderMarkdownKeepsFormatting(t *testing.T) {
	out, err := RenderMarkdown("A **bold** move and a [link](https://example.com).")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	html := out.String()
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("expected bold markup, got %q", html)
	}
	if !strings.Contains(html, `href="https://example.com"`) {
		t.Errorf("expected link, got %q", html)
	}
}

func TestRenderMarkdownStripsScript(t *testing.T) {
	out, err := RenderMarkdown("hello\n\n<script>alert('xss')</script>\n\nworld")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	html := out.String()
	if strings.Contains(html, "<script") {
		t.Errorf("script survived sanitization: %q", html)
	}
	if !strings.Contains(html, "hello") || !strings.Contains(html, "world") {
		t.Errorf("surrounding text lost: %q", html)
	}
}

func TestRenderMarkdownStripsEventHandlers(t *testing.T) {
	out, err := RenderMarkdown(`<img src="x.png" onerror="alert(1)">`)
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	if strings.Contains(out.String(), "onerror") {
		t.Errorf("event handler survived sanitization: %q", out.String())
	}
}

func TestRenderMarkdownEmptyInput(t *testing.T) {
	out, err := RenderMarkdown("")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if strings.Contains(out.String(), "<script") {
		t.Errorf("unexpected output for empty input: %q", out.String())
	}
}
