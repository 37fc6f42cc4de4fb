package middleware

import (
	"net/http"

	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/constants"
)

// IsAdminMiddleware gates Admin-only routes (user management, budget
// config, fleet-wide reports). The handler behind it never runs for other
// roles, so no Admin-scoped data is ever fetched for them.
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil || claims.Role() != constants.RoleAdmin {
				http.Error(w, "Unauthorized. Need Admin perms", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
