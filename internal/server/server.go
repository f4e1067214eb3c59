// Package server assembles the document store HTTP server.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courtside/statsync/internal/server/handlers"
	"github.com/courtside/statsync/internal/server/middleware"
)

// Router builds the full route tree with logging and recovery middleware
func Router(logger *slog.Logger, storage handlers.DocumentStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))

	health := handlers.NewHealthHandler(logger)
	docs := handlers.NewDocumentHandler(logger, storage)

	r.Get("/api/v1/health", health.Health)
	r.Mount("/api/v1/docs", docs.Routes())

	return r
}
