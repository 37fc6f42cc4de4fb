package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/models/dtos/requests"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// ListUsers handles GET /api/v1/usuarios. Admin only by route wiring.
func (h *Handlers) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.deps.Repo.Users.List(r.Context())
		if err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &users)
	}
}

// CreateUser handles POST /api/v1/usuarios: bind a profile to an identity
// the auth provider already issued.
func (h *Handlers) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		rol := constants.Role(req.Rol)
		if !rol.Valid() {
			respondWithError(w, http.StatusBadRequest, "rol inválido")
			return
		}
		if req.AuthID == "" || req.Nombre == "" {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		user := &gormModels.User{
			AuthID: req.AuthID,
			Nombre: req.Nombre,
			Email:  req.Email,
			Rol:    rol,
			Estado: constants.AccountActivo,
		}
		if err := h.deps.Repo.Users.Create(r.Context(), user); err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, user)
	}
}

// SetUserRole handles PUT /api/v1/usuarios/{id}/rol.
func (h *Handlers) SetUserRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req requests.SetUserRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		rol := constants.Role(req.Rol)
		if !rol.Valid() {
			respondWithError(w, http.StatusBadRequest, "rol inválido")
			return
		}

		if err := h.deps.Repo.Users.SetRole(r.Context(), id, rol); err != nil {
			respondDomainError(w, err)
			return
		}

		user, err := h.deps.Repo.Users.GetByID(r.Context(), id)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, user)
	}
}

// SetUserStatus handles PUT /api/v1/usuarios/{id}/estado.
func (h *Handlers) SetUserStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req requests.SetUserStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		estado := constants.AccountStatus(req.Estado)
		if estado != constants.AccountActivo && estado != constants.AccountInactivo {
			respondWithError(w, http.StatusBadRequest, "estado inválido")
			return
		}

		if err := h.deps.Repo.Users.SetStatus(r.Context(), id, estado); err != nil {
			respondDomainError(w, err)
			return
		}

		user, err := h.deps.Repo.Users.GetByID(r.Context(), id)
		if err != nil {
			respondDomainError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, user)
	}
}
