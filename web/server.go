// ABOUTME: The inkpress HTTP server: listing, reading, and static asset routes
// ABOUTME: behind a single chi router over an immutable, preloaded content index.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/inkpress/inkpress/assets"
	"github.com/inkpress/inkpress/content"
)

// Server serves the blog over HTTP. The content index and asset resolver are
// built before construction, so the server can never observe a half-loaded
// index: by the time NewServer returns, every handler input is final.
type Server struct {
	cfg       Config
	index     *content.Index
	resolver  *assets.Resolver
	templates *TemplateEngine
	router    chi.Router
}

// NewServer wires the router, templates, and handlers around the given
// already-loaded index and resolver.
func NewServer(cfg Config, index *content.Index, resolver *assets.Resolver) (*Server, error) {
	templates, err := NewTemplateEngine(resolver)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		index:     index,
		resolver:  resolver,
		templates: templates,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server on the configured address with
// timeouts to prevent resource exhaustion from slow clients.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.Bind,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	return srv.ListenAndServe()
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/read/{slug}", s.handleRead)

	// Everything else is a static file lookup in the public directory.
	r.Handle("/*", s.staticHandler())

	return r
}

// handleIndex renders the listing page, newest article first.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Title:       s.cfg.SiteName,
		Description: s.cfg.SiteDescription,
		SiteName:    s.cfg.SiteName,
		Items:       s.index.Newest(),
	}
	if err := s.templates.Render(w, "index.html", data); err != nil {
		log.Printf("error rendering index: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// handleRead renders one article. The Markdown body is converted and
// sanitized here, before the renderer ever sees it.
func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	item, ok := s.index.Get(slug)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	body, err := RenderMarkdown(item.Body)
	if err != nil {
		log.Printf("error rendering markdown: slug=%s err=%v", slug, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	description := item.Short
	if description == "" {
		description = s.cfg.SiteDescription
	}

	data := PageData{
		Title:       item.Title + " · " + s.cfg.SiteName,
		Description: description,
		SiteName:    s.cfg.SiteName,
		Item:        item,
		Body:        body,
	}
	if err := s.templates.Render(w, "read.html", data); err != nil {
		log.Printf("error rendering read: slug=%s err=%v", slug, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// handleHealth returns a JSON health check response.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// staticHandler serves files from the public directory. Hash-named assets
// get an immutable cache header: their URL changes whenever their content
// does, so clients may cache them forever.
func (s *Server) staticHandler() http.Handler {
	fileServer := http.FileServer(http.Dir(s.cfg.PublicDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.resolver.IsHashed(r.URL.Path) {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		}
		fileServer.ServeHTTP(w, r)
	})
}
