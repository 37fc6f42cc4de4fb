package responses

import (
	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/constants"
)

// ProfileView is the resolved application-level identity.
type ProfileView struct {
	ID     string                  `json:"id"`
	Nombre string                  `json:"nombre"`
	Email  string                  `json:"email"`
	Rol    constants.Role          `json:"rol"`
	Estado constants.AccountStatus `json:"estado"`
}

// SessionView is returned on session creation.
type SessionView struct {
	SessionID string      `json:"session_id"`
	ExpiresAt string      `json:"expires_at"`
	Profile   ProfileView `json:"perfil"`
	// Navigation lists the sections this role may see; the UI shell never
	// has to guess from strings.
	Navigation []string `json:"navegacion"`
	// Capabilities is the role-wide action set, so section gating needs
	// no second round trip.
	Capabilities auth.RoleCapabilities `json:"capabilities"`
}

// DashboardView is the role-dispatched metric card payload. Only the
// block matching the caller's role is populated.
type DashboardView struct {
	Rol          constants.Role         `json:"rol"`
	Admin        *AdminDashboard        `json:"admin,omitempty"`
	Coordinador  *CoordinadorDashboard  `json:"coordinador,omitempty"`
	Participante *ParticipanteDashboard `json:"participante,omitempty"`
}

type AdminDashboard struct {
	TotalEventos       int     `json:"total_eventos"`
	EventosActivos     int     `json:"eventos_activos"`
	EventosCompletados int     `json:"eventos_completados"`
	TotalParticipantes int     `json:"total_participantes"`
	TotalUsuarios      int     `json:"total_usuarios"`
	PresupuestoGeneral float64 `json:"presupuesto_general"`
	FondosEjecutados   float64 `json:"fondos_ejecutados"`
}

type CoordinadorDashboard struct {
	MisEventos         int     `json:"mis_eventos"`
	EventosActivos     int     `json:"eventos_activos"`
	EventosCompletados int     `json:"eventos_completados"`
	TotalParticipantes int     `json:"total_participantes"`
	PresupuestoTotal   float64 `json:"presupuesto_total"`
	FondosEjecutados   float64 `json:"fondos_ejecutados"`
}

type ParticipanteDashboard struct {
	EventosInscritos   int `json:"eventos_inscritos"`
	EventosActivos     int `json:"eventos_activos"`
	EventosCompletados int `json:"eventos_completados"`
}
