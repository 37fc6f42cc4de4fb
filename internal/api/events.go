package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/models/dtos/requests"
	"fundaevento/plataforma/internal/models/dtos/responses"
	gormModels "fundaevento/plataforma/internal/models/gorm"
	"fundaevento/plataforma/internal/services"
)

// ListEvents handles GET /api/v1/eventos. Every row carries the effective
// status and the live ledger count; budget fields appear only for roles
// allowed to see them.
func (h *Handlers) ListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		q := r.URL.Query()
		periodo, _ := strconv.Atoi(q.Get("periodo"))

		views, err := h.deps.Services.Events.List(r.Context(), claims, services.ListFilters{
			Estado:    q.Get("estado"),
			Categoria: q.Get("categoria"),
			Periodo:   periodo,
			Search:    q.Get("q"),
		})
		if err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &views)
	}
}

// GetEvent handles GET /api/v1/eventos/{id}.
func (h *Handlers) GetEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		id := chi.URLParam(r, "id")

		view, err := h.deps.Services.Events.Get(r.Context(), claims, id)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, view)
	}
}

// Calendar handles GET /api/v1/eventos/calendario?mes=YYYY-MM.
func (h *Handlers) Calendar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		mes := r.URL.Query().Get("mes")
		parsed, err := time.Parse("2006-01", mes)
		if err != nil {
			parsed = time.Now()
		}

		days, err := h.deps.Services.Events.Calendar(r.Context(), claims, parsed.Year(), parsed.Month())
		if err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &days)
	}
}

// CreateEvent handles POST /api/v1/eventos (Admin or Coordinador).
func (h *Handlers) CreateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		var req requests.SaveEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		event, err := h.deps.Services.Events.Create(r.Context(), claims, req)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		view := eventCreatedView(event)
		respondWithSuccess(w, http.StatusCreated, &view)
	}
}

// UpdateEvent handles PUT /api/v1/eventos/{id}.
func (h *Handlers) UpdateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		id := chi.URLParam(r, "id")

		var req requests.SaveEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		event, err := h.deps.Services.Events.Update(r.Context(), claims, id, req)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		view := eventCreatedView(event)
		respondWithSuccess(w, http.StatusOK, &view)
	}
}

// SetEventStatus handles PUT /api/v1/eventos/{id}/estado.
func (h *Handlers) SetEventStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		id := chi.URLParam(r, "id")

		var req requests.SetEventStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		if err := h.deps.Services.Events.SetStatus(r.Context(), claims, id, req.Estado); err != nil {
			respondDomainError(w, err)
			return
		}

		// Re-fetch so the response reflects authoritative state.
		view, err := h.deps.Services.Events.Get(r.Context(), claims, id)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, view)
	}
}

// DeleteEvent handles DELETE /api/v1/eventos/{id}.
func (h *Handlers) DeleteEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		id := chi.URLParam(r, "id")

		if err := h.deps.Services.Events.Delete(r.Context(), claims, id); err != nil {
			respondDomainError(w, err)
			return
		}

		msg := "evento eliminado"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// eventCreatedView renders a just-written event for its creator, who can
// by definition see its budget.
func eventCreatedView(event *gormModels.Event) responses.EventView {
	max := event.PresupuestoMax
	actual := event.PresupuestoActual
	return responses.EventView{
		ID:                event.ID,
		Titulo:            event.Titulo,
		Descripcion:       event.Descripcion,
		Fecha:             event.Fecha.Format("2006-01-02"),
		Hora:              event.Hora,
		Ubicacion:         event.Ubicacion,
		Categoria:         event.Categoria,
		CupoMaximo:        event.CupoMaximo,
		PresupuestoMax:    &max,
		PresupuestoActual: &actual,
		Estado:            services.EffectiveStatus(event, time.Now()),
		CoordinadorID:     event.CoordinadorID,
	}
}
