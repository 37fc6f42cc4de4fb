package middleware

import (
	"errors"
	"net/http"

	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/common"
)

const sessionCookieName = "sesion"

// AuthMiddleware resolves the caller's session and attaches claims to the
// request context. Requests without a valid session are rejected before
// any handler runs; no protected handler ever executes with partial or
// default identity.
func AuthMiddleware(sessions *common.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get("X-Session-Token")
			if sessionID == "" {
				if cookie, err := r.Cookie(sessionCookieName); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				http.Error(w, "Unauthorized. Missing session", http.StatusUnauthorized)
				return
			}

			session, err := sessions.GetSession(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, common.ErrSessionNotFound) {
					http.Error(w, "Unauthorized. Session expired", http.StatusUnauthorized)
					return
				}
				http.Error(w, "Unauthorized. Session lookup failed", http.StatusUnauthorized)
				return
			}

			if !session.Rol.Valid() {
				// A session minted before a role was removed from the
				// closed set. Reject, never default.
				http.Error(w, "Unauthorized. Invalid role", http.StatusUnauthorized)
				return
			}

			claims := &auth.SessionClaims{
				SessionIDValue: session.SessionID,
				UserUUID:       session.UserID,
				RoleValue:      session.Rol,
				NombreValue:    session.Nombre,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
