package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quayside/account-core/internal/auth"
)

// handleListOrganisations returns the organisations the caller belongs to.
func (s *Server) handleListOrganisations(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	orgs, err := s.orgRepo.ListForUser(r.Context(), principal.ID)
	if err != nil {
		s.logger.Error("list organisations failed", "error", err, "user_id", principal.ID)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"organisations": orgs,
		"count":         len(orgs),
	})
}

// handleGetOrganisation returns a single organisation by ID.
//
// Non-members get the same 404 as a missing organisation, so the endpoint
// does not reveal which organisation IDs exist.
func (s *Server) handleGetOrganisation(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgId")
	principal := principalFromContext(r.Context())

	member, err := s.orgRepo.IsMember(r.Context(), orgID, principal.ID)
	if err != nil {
		s.logger.Error("membership check failed", "error", err, "org_id", orgID)
		writeInternalError(w)
		return
	}
	if !member {
		writeMessage(w, http.StatusNotFound, "Organisation not found")
		return
	}

	org, err := s.orgRepo.GetByID(r.Context(), orgID)
	if err != nil {
		if errors.Is(err, auth.ErrOrgNotFound) {
			writeMessage(w, http.StatusNotFound, "Organisation not found")
			return
		}
		s.logger.Error("get organisation failed", "error", err, "org_id", orgID)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, org)
}
