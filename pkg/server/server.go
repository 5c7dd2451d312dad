package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/matzehuels/proofgen/pkg/pipeline"
	"github.com/matzehuels/proofgen/pkg/session"
)

// Defaults for [Config] fields left zero.
const (
	DefaultAddr      = "127.0.0.1:8080"
	DefaultResultTTL = time.Hour
	DefaultBurst     = 10

	maxBodyBytes    = 64 << 10
	shutdownTimeout = 10 * time.Second
)

// Config configures a [Server].
type Config struct {
	Addr string

	// RateLimit caps generate requests per second across all clients.
	// Zero disables limiting.
	RateLimit float64
	Burst     int

	// ResultTTL is how long a generated bundle stays downloadable.
	ResultTTL time.Duration

	// Formats are rendered for every generate call in addition to svg.
	Formats []string
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Burst <= 0 {
		c.Burst = DefaultBurst
	}
	if c.ResultTTL <= 0 {
		c.ResultTTL = DefaultResultTTL
	}
}

// Server is the dashboard HTTP server.
type Server struct {
	cfg      Config
	runner   *pipeline.Runner
	sessions session.Store
	results  *gocache.Cache
	limiter  *rate.Limiter
	logger   *log.Logger
	router   chi.Router
}

// New builds a server. sessions may be nil, in which case the last request
// is not remembered.
func New(cfg Config, runner *pipeline.Runner, sessions session.Store, logger *log.Logger) *Server {
	cfg.setDefaults()
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}

	s := &Server{
		cfg:      cfg,
		runner:   runner,
		sessions: sessions,
		results:  gocache.New(cfg.ResultTTL, cfg.ResultTTL/2),
		logger:   logger,
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.cfg.Addr }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", s.handleDashboard)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.With(s.rateLimit).Post("/generate", s.handleGenerate)
		r.Get("/templates", s.handleTemplates)

		r.Get("/session", s.handleGetSession)
		r.Delete("/session", s.handleClearSession)

		r.Route("/bundles/{id}", func(r chi.Router) {
			r.Get("/", s.handleBundle)
			r.Get("/svg", s.handleSVG)
			r.Get("/zip", s.handleZip)
			r.Get("/artifacts/{format}", s.handleArtifact)
			r.Get("/files/*", s.handleFile)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, notFound("no route for %s", r.URL.Path))
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", "addr", "http://"+s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
