// Package server exposes maze generation over HTTP.
//
// The server wraps the same pipeline the CLI uses: a request for a maze is
// validated, generated (or fetched from cache), rendered in the requested
// format, and written back. Responses for explicitly seeded requests are
// cacheable because generation is deterministic; unseeded requests draw a
// fresh seed per call and bypass the cache.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/JakeOShannessy/minotaur/pkg/cache"
	"github.com/JakeOShannessy/minotaur/pkg/pipeline"
)

// DefaultMaxCells bounds the size of a requested maze. Generation is
// O(cells) or worse (AldousBroder walks until coverage), so an unbounded
// request is an easy way to pin a CPU.
const DefaultMaxCells = 250_000

// Config contains server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Cache stores rendered artifacts for seeded requests. Nil disables
	// caching.
	Cache cache.Cache

	// MaxCells caps width*height per request. Zero means DefaultMaxCells.
	MaxCells int

	// Logger is the request logger. Nil falls back to the package default.
	Logger *log.Logger
}

// Server is the HTTP maze service.
type Server struct {
	addr     string
	cache    cache.Cache
	maxCells int
	logger   *log.Logger
	runner   *pipeline.Runner
}

// New creates a server from config.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	c := cfg.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	maxCells := cfg.MaxCells
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	return &Server{
		addr:     cfg.Addr,
		cache:    c,
		maxCells: maxCells,
		logger:   logger,
		runner:   pipeline.NewRunner(logger),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/algorithms", s.handleAlgorithms)
		r.Get("/maze", s.handleMaze)
	})
	return r
}

// Run serves HTTP until the context is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

// logRequests logs each request with its chi request ID.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}
