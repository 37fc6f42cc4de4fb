package auth

import "fundaevento/plataforma/internal/constants"

// UserClaims is the request-scoped identity every handler reads from
// context. Exactly one implementation exists today (Redis-backed
// sessions); the interface keeps the middleware and handlers independent
// of where a session came from.
type UserClaims interface {
	UserID() string
	Role() constants.Role
	Nombre() string
	SessionID() string
	Source() string
}

// SessionClaims are claims materialized from a stored session.
type SessionClaims struct {
	SessionIDValue string
	UserUUID       string
	RoleValue      constants.Role
	NombreValue    string
}

func (c *SessionClaims) UserID() string       { return c.UserUUID }
func (c *SessionClaims) Role() constants.Role { return c.RoleValue }
func (c *SessionClaims) Nombre() string       { return c.NombreValue }
func (c *SessionClaims) SessionID() string    { return c.SessionIDValue }
func (c *SessionClaims) Source() string       { return "SESSION" }
