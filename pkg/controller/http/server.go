package http

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/mekupdater/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr       string
	repository string
	reporter   interfaces.FailureReporter
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithRepository sets the "owner/repo" name reported by the health endpoint
func WithRepository(repository string) Option {
	return func(c *config) {
		c.repository = repository
	}
}

// WithFailureReporter sets the reporter notified of failed outcomes
func WithFailureReporter(reporter interfaces.FailureReporter) Option {
	return func(c *config) {
		c.reporter = reporter
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server exposing the release status of the
// repository served by client.
func NewServer(
	ctx context.Context,
	client interfaces.RepositoryClient,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: "localhost:8080",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(ContextLoggerMiddleware(ctx))
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", newHealthHandler(cfg.repository))

	releases := NewReleaseHandler(client, cfg.reporter)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/repository", releases.HandleRepository)
		r.Get("/releases", releases.HandleReleases)
		r.Get("/releases/latest", releases.HandleLatestRelease)
		r.Get("/releases/latest/assets", releases.HandleLatestReleaseAssets)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
			BaseContext: func(net.Listener) context.Context {
				return ctx
			},
		},
	}

	return server, nil
}
