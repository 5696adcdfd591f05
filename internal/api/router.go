package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Health check (no auth required)
	r.Get("/health", s.handleHealth)

	// Auth endpoints (no auth required)
	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	// Protected routes
	r.Route("/api", func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Get("/me", s.handleGetMe)

		r.Route("/users", func(r chi.Router) {
			r.Get("/{id}", s.handleGetUser)
		})

		r.Route("/organisations", func(r chi.Router) {
			r.Get("/", s.handleListOrganisations)
			r.Get("/{orgId}", s.handleGetOrganisation)
		})

		// Audit trail is only served when a repository is wired in.
		if s.auditRepo != nil {
			r.Get("/audit", s.handleListAudit)
		}
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
