package api

import (
	"encoding/json"
	"net/http"

	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/logging"
	"fundaevento/plataforma/internal/models/dtos/requests"
	"fundaevento/plataforma/internal/models/dtos/responses"
)

// CreateSession handles POST /api/v1/auth/session: exchange an
// auth-provider identity token for a platform session.
//
// The token proves "who" with the auth provider; access is granted only
// if a profile row exists for that identity. No row, an out-of-set role,
// or an inactive account all surface as 401, never a default role.
func (h *Handlers) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requests.CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IdentityToken == "" {
			respondWithError(w, http.StatusBadRequest, constants.MsgInvalidPayload)
			return
		}

		identity, err := h.deps.Services.Verifier.Verify(req.IdentityToken)
		if err != nil {
			logging.Warn("identity token rejected", "error", err.Error())
			respondWithError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
			return
		}

		user, err := h.deps.Services.Identity.Resolve(r.Context(), identity.AuthID)
		if err != nil {
			// Authenticated but unknown to the platform: unauthorized,
			// not a loading state and not a default role.
			respondWithError(w, http.StatusUnauthorized, constants.MsgProfileNotFound)
			return
		}

		session, err := h.deps.Services.Session.CreateSession(r.Context(), user.ID, user.AuthID, user.Nombre, user.Rol)
		if err != nil {
			respondDomainError(w, err)
			return
		}

		view := responses.SessionView{
			SessionID: session.SessionID,
			ExpiresAt: session.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
			Profile: responses.ProfileView{
				ID:     user.ID,
				Nombre: user.Nombre,
				Email:  user.Email,
				Rol:    user.Rol,
				Estado: user.Estado,
			},
			Navigation: auth.NavigationFor(user.Rol),
			Capabilities: auth.RoleCapabilitiesFor(user.Rol),
		}

		respondWithSuccess(w, http.StatusCreated, &view)
	}
}

// DeleteSession handles DELETE /api/v1/auth/session (sign-out).
func (h *Handlers) DeleteSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
			return
		}

		if err := h.deps.Services.Session.DeleteSession(r.Context(), claims.SessionID()); err != nil {
			respondDomainError(w, err)
			return
		}

		msg := "sesión cerrada"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// Me handles GET /api/v1/me: the resolved profile for the current session.
func (h *Handlers) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, constants.MsgUnauthorized)
			return
		}

		user, err := h.deps.Repo.Users.GetByID(r.Context(), claims.UserID())
		if err != nil {
			respondDomainError(w, err)
			return
		}

		view := responses.ProfileView{
			ID:     user.ID,
			Nombre: user.Nombre,
			Email:  user.Email,
			Rol:    user.Rol,
			Estado: user.Estado,
		}
		respondWithSuccess(w, http.StatusOK, &view)
	}
}
