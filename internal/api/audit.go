package api

import (
	"net/http"
	"strconv"

	"github.com/quayside/account-core/internal/audit"
)

// handleListAudit returns the caller's own authentication history.
//
// Query parameters:
//   - action: filter by action (register, login, login_failed)
//   - limit:  page size (default 50, max 200)
//   - offset: pagination offset
func (s *Server) handleListAudit(w http.ResponseWriter, r *http.Request) {
	principal := principalFromContext(r.Context())

	filter := audit.Filter{
		Action: r.URL.Query().Get("action"),
		UserID: principal.ID,
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	result, err := s.auditRepo.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("list audit events failed", "error", err, "user_id", principal.ID)
		writeInternalError(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
