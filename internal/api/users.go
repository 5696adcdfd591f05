package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quayside/account-core/internal/auth"
)

// handleGetUser returns a single user account by ID.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := s.userRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		s.logger.Error("get user failed", "error", err)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// handleGetMe returns the authenticated caller's own account.
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, principalFromContext(r.Context()))
}
