// Package server exposes the estimating engine over a JSON HTTP API so the
// engine can back a web front end alongside the CLI.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/renoworks/renoquote/internal/store"
)

// Server wires the project store and settings file into HTTP handlers.
type Server struct {
	store        *store.Store
	settingsPath string
	log          *slog.Logger
}

// New builds a Server around an opened store. settingsPath is the location
// of the contractor settings file.
func New(st *store.Store, settingsPath string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{store: st, settingsPath: settingsPath, log: log}
}

// Routes returns the API router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.handleListProjects)
			r.Post("/", s.handleCreateProject)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetProject)
				r.Delete("/", s.handleDeleteProject)
				r.Put("/design/{workflow}", s.handlePutDesign)
				r.Put("/items/{workflow}", s.handlePutItems)
				r.Post("/import/{workflow}", s.handleImportItems)
				r.Get("/totals", s.handleGetTotals)
				r.Get("/estimate.pdf", s.handleEstimatePDF)
				r.Get("/estimate.xlsx", s.handleEstimateXLSX)
			})
		})
	})

	return r
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
