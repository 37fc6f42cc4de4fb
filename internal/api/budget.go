package api

import (
	"encoding/json"
	"net/http"
	"time"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/models/dtos/requests"
)

const budgetCacheKey = string(constants.CachePrefixPresupuesto)

// GetGeneralBudget handles GET /api/v1/configuracion/presupuesto.
func (h *Handlers) GetGeneralBudget() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		val, err := h.deps.Services.Cache.GetOrSet(budgetCacheKey, time.Minute, func() (any, error) {
			cfg, err := h.deps.Repo.BudgetConfig.Get(r.Context())
			if err != nil {
				return nil, err
			}
			return cfg.PresupuestoGeneral, nil
		})
		if err != nil {
			respondDomainError(w, err)
			return
		}

		presupuesto, _ := val.(float64)
		resp := struct {
			PresupuestoGeneral float64 `json:"presupuesto_general"`
		}{PresupuestoGeneral: presupuesto}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// SetGeneralBudget handles PUT /api/v1/configuracion/presupuesto.
func (h *Handlers) SetGeneralBudget() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.SetGeneralBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}
		if req.PresupuestoGeneral < 0 {
			respondWithError(w, http.StatusBadRequest, "presupuesto_general no puede ser negativo")
			return
		}

		if err := h.deps.Repo.BudgetConfig.Set(r.Context(), req.PresupuestoGeneral); err != nil {
			respondDomainError(w, err)
			return
		}
		h.deps.Services.Cache.Delete(budgetCacheKey)

		// Read back the stored value rather than echoing the request.
		cfg, err := h.deps.Repo.BudgetConfig.Get(r.Context())
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, cfg)
	}
}
