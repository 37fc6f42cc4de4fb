package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundaevento/plataforma/internal/auth"
)

// Register handles POST /api/v1/eventos/{id}/inscripcion: a Participante
// enrolling themselves. Conflicts (already registered, event not open,
// full event under enforcement) come back as 409 with no partial state
// change.
func (h *Handlers) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		eventoID := chi.URLParam(r, "id")

		if err := h.deps.Services.Registrations.Register(r.Context(), claims.UserID(), eventoID); err != nil {
			h.deps.Metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
			respondDomainError(w, err)
			return
		}
		h.deps.Metrics.RegistrationsTotal.WithLabelValues("registered").Inc()

		// Re-read the ledger so the response carries the authoritative
		// count, not an assumed increment.
		count, err := h.deps.Services.Registrations.CountActive(r.Context(), eventoID)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		resp := struct {
			EventoID  string `json:"evento_id"`
			Inscritos int    `json:"inscritos"`
		}{EventoID: eventoID, Inscritos: count}
		respondWithSuccess(w, http.StatusCreated, &resp)
	}
}

// Unregister handles DELETE /api/v1/eventos/{id}/inscripcion.
func (h *Handlers) Unregister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		eventoID := chi.URLParam(r, "id")

		if err := h.deps.Services.Registrations.Cancel(r.Context(), claims.UserID(), eventoID); err != nil {
			respondDomainError(w, err)
			return
		}
		h.deps.Metrics.RegistrationsTotal.WithLabelValues("cancelled").Inc()

		count, err := h.deps.Services.Registrations.CountActive(r.Context(), eventoID)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		resp := struct {
			EventoID  string `json:"evento_id"`
			Inscritos int    `json:"inscritos"`
		}{EventoID: eventoID, Inscritos: count}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// MyEvents handles GET /api/v1/mis-eventos: the caller's own
// registrations only.
func (h *Handlers) MyEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		views, err := h.deps.Services.Registrations.MyEvents(r.Context(), claims.UserID())
		if err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &views)
	}
}
