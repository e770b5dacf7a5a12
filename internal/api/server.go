package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/okeefe/babblebox/internal/catalog"
	"github.com/okeefe/babblebox/internal/config"
	"github.com/okeefe/babblebox/internal/nav"
	"github.com/okeefe/babblebox/internal/speech"
)

// Server is the local HTTP surface the UI drives: catalog queries,
// navigation events, and item taps.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	server     *http.Server
	catalog    *catalog.Catalog
	machine    *nav.Machine
	controller *speech.Controller
}

// New creates a new API server.
func New(cfg *config.Config, logger *slog.Logger, cat *catalog.Catalog, machine *nav.Machine, controller *speech.Controller) *Server {
	s := &Server{
		cfg:        cfg,
		logger:     logger,
		catalog:    cat,
		machine:    machine,
		controller: controller,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/healthz", s.handleHealthz)
	mux.HandleFunc("GET /v1/catalog", s.handleCatalog)
	mux.HandleFunc("GET /v1/catalog/{key}", s.handleCategory)
	mux.HandleFunc("GET /v1/screen", s.handleScreen)
	mux.HandleFunc("POST /v1/screen/select", s.withAuth(s.handleSelect))
	mux.HandleFunc("POST /v1/screen/back", s.withAuth(s.handleBack))
	mux.HandleFunc("POST /v1/tap", s.withAuth(s.handleTap))
	mux.HandleFunc("GET /v1/speaking", s.handleSpeaking)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
