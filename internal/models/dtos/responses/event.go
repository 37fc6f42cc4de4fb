package responses

import (
	"fundaevento/plataforma/internal/constants"
)

// EventView is an event as rendered to a client: effective status and the
// live participant count are computed per read, and the capability block
// reflects the requesting user's role.
type EventView struct {
	ID                string                `json:"id"`
	Titulo            string                `json:"titulo"`
	Descripcion       string                `json:"descripcion"`
	Fecha             string                `json:"fecha"`
	Hora              string                `json:"hora"`
	Ubicacion         string                `json:"ubicacion"`
	Categoria         string                `json:"categoria"`
	CupoMaximo        int                   `json:"cupo_maximo"`
	Inscritos         int                   `json:"inscritos"`
	PresupuestoMax    *float64              `json:"presupuesto_max,omitempty"`
	PresupuestoActual *float64              `json:"presupuesto_actual,omitempty"`
	Estado            constants.EventStatus `json:"estado"`
	CoordinadorID     *string               `json:"coordinador_id,omitempty"`
	Capabilities      EventCapabilities     `json:"capabilities"`
}

// EventCapabilities is the per-role action set for one event.
type EventCapabilities struct {
	CanEdit         bool `json:"can_edit"`
	CanDelete       bool `json:"can_delete"`
	CanChangeStatus bool `json:"can_change_status"`
	CanRegister     bool `json:"can_register"`
	CanViewBudget   bool `json:"can_view_budget"`
}

// CalendarDay groups the events of one date for the calendar view.
type CalendarDay struct {
	Fecha   string      `json:"fecha"`
	Eventos []EventView `json:"eventos"`
}

// MyEventView is a participant's own registration joined to its event.
type MyEventView struct {
	EventoID  string                       `json:"evento_id"`
	Titulo    string                       `json:"titulo"`
	Fecha     string                       `json:"fecha"`
	Ubicacion string                       `json:"ubicacion"`
	Categoria string                       `json:"categoria"`
	Estado    constants.EventStatus        `json:"estado"`
	Inscrito  constants.RegistrationStatus `json:"inscripcion"`
}
