// ABOUTME: Markdown-to-HTML pipeline: goldmark conversion followed by bluemonday
// ABOUTME: sanitization, producing a SafeHTML value the renderers can trust.
package web

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// SafeHTML wraps HTML that has already been sanitized. The only way to
// construct one is RenderMarkdown, so a renderer can never be handed a raw,
// unsanitized string by accident.
type SafeHTML struct {
	html template.HTML
}

// HTML returns the sanitized markup for verbatim injection into a template.
func (s SafeHTML) HTML() template.HTML { return s.html }

func (s SafeHTML) String() string { return string(s.html) }

// Raw HTML is allowed through goldmark so that the sanitizer, not the
// Markdown parser, owns the trust boundary.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

var sanitizer = bluemonday.UGCPolicy()

// RenderMarkdown converts a Markdown body to sanitized HTML.
func RenderMarkdown(src string) (SafeHTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return SafeHTML{}, fmt.Errorf("converting markdown: %w", err)
	}
	clean := sanitizer.SanitizeBytes(buf.Bytes())
	return SafeHTML{html: template.HTML(clean)}, nil
}
