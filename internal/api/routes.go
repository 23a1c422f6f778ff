package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ignite/email-validator/internal/config"
)

// SetupRoutes assembles the middleware chain and all routes.
// Middleware order matters: observational wrappers run outermost so they see
// the final status; the recoverer runs innermost ("error handler last") so a
// panicking handler still produces a logged, well-formed JSON response.
func SetupRoutes(h *Handlers, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if cfg.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(securityHeaders)
	r.Use(requestLogger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.API.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Use(middleware.Compress(5))
	r.Use(maxBody(cfg.API.MaxBodyBytes))
	r.Use(recoverer(cfg.Server.IsProduction()))

	// Service descriptor and health (outside the versioned prefix)
	r.Get("/", h.HandleRoot)
	r.Get("/health", h.HandleHealth)
	r.Get("/health/ready", h.HandleReadiness)
	r.Get("/health/live", h.HandleLiveness)

	// Versioned validation API
	r.Route(cfg.API.Prefix(), func(r chi.Router) {
		r.Post("/validate", h.HandleValidate)
		r.Post("/batch", h.HandleBatch)
		r.Get("/disposable/{domain}", h.HandleDisposable)
	})

	r.NotFound(h.HandleNotFound)
	r.MethodNotAllowed(h.HandleMethodNotAllowed)

	return r
}
