// Package http serves the document index, navigation and rendered pages over
// HTTP as JSON, plus a sitemap.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/docnav"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP API server for docnav.
type Server struct {
	router chi.Router
	log    *slog.Logger

	documents  docnav.DocumentService
	search     docnav.SearchService
	navigation docnav.NavigationService
	renderer   docnav.Renderer

	// Prefix is the address prefix of documents, e.g. "/docs".
	Prefix string

	// Limiter, when set, rate limits requests per client.
	Limiter *ClientLimiter

	// BaseURL is prepended to sitemap locations. When empty it is derived
	// from the request.
	BaseURL string
}

// NewServer creates and configures the HTTP server.
func NewServer(
	documents docnav.DocumentService,
	search docnav.SearchService,
	navigation docnav.NavigationService,
	renderer docnav.Renderer,
	log *slog.Logger,
) *Server {
	s := &Server{
		log:        log,
		documents:  documents,
		search:     search,
		navigation: navigation,
		renderer:   renderer,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(s.rateLimit)

	r.Get("/health", s.handleHealth)
	r.Get("/sitemap.xml", s.handleSitemap)

	r.Route("/api", func(r chi.Router) {
		r.Get("/documents", s.handleListDocuments)
		r.Get("/documents/*", s.handleGetDocument)
		r.Get("/sidebar", s.handleSidebar)
		r.Get("/neighbors/*", s.handleNeighbors)
		r.Get("/search", s.handleSearch)
		r.Get("/pages/*", s.handlePage)
	})

	s.router = r
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		s.Limiter.Middleware(next).ServeHTTP(w, r)
	})
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
