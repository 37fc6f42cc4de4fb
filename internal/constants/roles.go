package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role mirrors the "rol" column on the usuarios table. The set is closed:
// anything else coming back from the store is rejected at identity
// resolution, never defaulted.
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleCoordinador  Role = "Coordinador"
	RoleParticipante Role = "Participante"
)

func (r Role) String() string { return string(r) }

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinador, RoleParticipante:
		return true
	}
	return false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
