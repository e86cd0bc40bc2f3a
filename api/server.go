/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for tooling frontends

ROUTE GROUPS:
  /api/frequencies/*    Frequency parsing and date arithmetic
  /api/curves/*         Curve set storage

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/frequencies", func(r chi.Router) {
			r.Get("/{text}", h.DescribeFrequency)
			r.Get("/{text}/shift", h.ShiftDate)
		})

		r.Route("/curves", func(r chi.Router) {
			r.Get("/", h.ListCurveSets)
			r.Post("/", h.CreateCurveSet)
			r.Post("/fixtures", h.LoadFixtures)
			r.Get("/{name}", h.GetCurveSet)
			r.Delete("/{name}", h.DeleteCurveSet)
		})
	})

	return r
}
