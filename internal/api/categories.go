package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/models/dtos/requests"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

const categoriesCacheKey = string(constants.CachePrefixCategorias)

// ListCategories handles GET /api/v1/categorias.
func (h *Handlers) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		val, err := h.deps.Services.Cache.GetOrSet(categoriesCacheKey, time.Minute, func() (any, error) {
			return h.deps.Repo.Categories.List(r.Context())
		})
		if err != nil {
			respondDomainError(w, err)
			return
		}

		cats, _ := val.([]gormModels.Category)
		respondWithSuccess(w, http.StatusOK, &cats)
	}
}

// CreateCategory handles POST /api/v1/categorias: explicit creation; the
// event form also creates categories implicitly on save.
func (h *Handlers) CreateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		nombre := strings.TrimSpace(req.Nombre)
		if nombre == "" {
			respondWithError(w, http.StatusBadRequest, "nombre es obligatorio")
			return
		}

		if err := h.deps.Repo.Categories.Ensure(r.Context(), nombre); err != nil {
			respondDomainError(w, err)
			return
		}
		h.deps.Services.Cache.Delete(categoriesCacheKey)

		cat := gormModels.Category{Nombre: nombre, Activo: true}
		respondWithSuccess(w, http.StatusCreated, &cat)
	}
}
