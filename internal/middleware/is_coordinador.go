package middleware

import (
	"net/http"

	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/constants"
)

// IsCoordinadorMiddleware gates event-management routes: Coordinador or
// Admin. Per-event ownership is enforced again in the service layer; this
// only keeps Participantes out of the management surface entirely.
func IsCoordinadorMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			switch claims.Role() {
			case constants.RoleAdmin, constants.RoleCoordinador:
				next.ServeHTTP(w, r)
			default:
				http.Error(w, "Unauthorized. Need Coordinador perms", http.StatusForbidden)
			}
		})
	}
}

// IsParticipanteMiddleware gates self-service enrollment routes. Admin
// and Coordinador accounts manage events, they do not enroll.
func IsParticipanteMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil || claims.Role() != constants.RoleParticipante {
				http.Error(w, "Unauthorized. Need Participante perms", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
