package api

import (
	"net/http"

	"fundaevento/plataforma/internal/auth"
)

// Dashboard handles GET /api/v1/dashboard: the role-dispatched landing
// metrics. Only the caller's own block is computed and returned.
func (h *Handlers) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		view, err := h.deps.Services.Dashboard.Build(r.Context(), claims)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, view)
	}
}
