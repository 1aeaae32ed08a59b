package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/quatrainhq/quatrain-api/internal/api"
	apiMiddleware "github.com/quatrainhq/quatrain-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.Origins(),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware)

	poemHandler := api.NewPoemHandler(app.poemService)
	healthHandler := api.NewHealthHandler(app.poemService)

	r.Get("/", healthHandler.Index)
	r.Get("/health", healthHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/service/status", healthHandler.Status)
		r.Post("/poems/generate", poemHandler.GeneratePoem)
	})

	return r
}
