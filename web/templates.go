// ABOUTME: TemplateEngine loads embedded HTML templates and renders them with Go's html/template.
// ABOUTME: Templates are embedded at compile time via go:embed for zero runtime path issues.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inkpress/inkpress/assets"
	"github.com/inkpress/inkpress/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to templates for rendering.
type PageData struct {
	Title       string
	Description string // meta description; handlers fill in the site default when empty
	SiteName    string
	Items       []*content.Item // listing page
	Item        *content.Item   // reading page
	Body        SafeHTML        // reading page, pre-sanitized
}

// TemplateEngine loads and renders embedded HTML templates.
type TemplateEngine struct {
	templates map[string]*template.Template
}

// templateFuncs returns the FuncMap available to all templates. The asset
// helper closes over the resolver so every stylesheet and favicon URL is
// rewritten to its hash-named variant when cache busting is on.
func templateFuncs(resolver *assets.Resolver) template.FuncMap {
	return template.FuncMap{
		"asset":    resolver.Rewrite,
		"longDate": longDate,
		"hashtags": hashtags,
		"year":     func() int { return time.Now().Year() },
	}
}

// longDate formats a timestamp as a long-form date with a short time.
func longDate(t time.Time) string {
	return t.Format("January 2, 2006 · 3:04 PM")
}

// hashtags joins tags as space-separated #hashtags, preserving their order.
func hashtags(tags []string) string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = "#" + tag
	}
	return strings.Join(out, " ")
}

// NewTemplateEngine parses all embedded templates and returns a ready-to-use engine.
// Each page template is parsed together with the layout so that the layout wraps every page.
func NewTemplateEngine(resolver *assets.Resolver) (*TemplateEngine, error) {
	funcs := templateFuncs(resolver)

	pages := []string{
		"index.html",
		"read.html",
	}

	engine := &TemplateEngine{
		templates: make(map[string]*template.Template),
	}

	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		engine.templates[page] = t
	}

	return engine, nil
}

// Render executes the named template with the given data and writes the result
// to w. It sets the Content-Type header to text/html.
func (e *TemplateEngine) Render(w http.ResponseWriter, name string, data PageData) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.ExecuteTemplate(w, "layout.html", data)
}

// RenderTo executes the named template with the given data and writes the
// result to an arbitrary io.Writer (useful for testing without HTTP).
func (e *TemplateEngine) RenderTo(w io.Writer, name string, data PageData) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return t.ExecuteTemplate(w, "layout.html", data)
}
