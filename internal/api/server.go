package api

import (
	"context"
	"net/http"
	"time"

	"github.com/ignite/email-validator/internal/config"
	"github.com/ignite/email-validator/internal/storage"
)

// Server represents the API server
type Server struct {
	config  *config.Config
	handler http.Handler
	server  *http.Server
}

// NewServer creates a new API server. Store handles are injected here so
// their lifecycle stays owned by the caller (open before, close after).
func NewServer(cfg *config.Config, stores *storage.Stores) *Server {
	handlers := NewHandlers(stores, cfg.API.Prefix())
	router := SetupRoutes(handlers, cfg)

	return &Server{
		config:  cfg,
		handler: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server: new connections are refused and
// in-flight requests are given until ctx expires to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.handler
}
