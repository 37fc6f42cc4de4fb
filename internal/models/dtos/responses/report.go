package responses

import "fundaevento/plataforma/internal/constants"

// Report is the aggregation output: scalar summary plus one detail row per
// event in the filtered set. BudgetSource says where BudgetTotal came
// from: the organization-wide configuracion singleton (admin scope) or
// the sum of the scoped events' own budgets (coordinator scope). The two
// figures are distinct metrics and must not be conflated.
type Report struct {
	Scope             string                 `json:"scope"`
	Periodo           int                    `json:"periodo,omitempty"`
	Categoria         string                 `json:"categoria,omitempty"`
	TotalEvents       int                    `json:"total_eventos"`
	ActiveEvents      int                    `json:"eventos_activos"`
	CompletedEvents   int                    `json:"eventos_completados"`
	TotalParticipants int                    `json:"total_participantes"`
	AvgAttendancePct  float64                `json:"promedio_asistencia_pct"`
	BudgetSource      constants.BudgetSource `json:"budget_source"`
	BudgetTotal       float64                `json:"presupuesto_total"`
	BudgetSpent       float64                `json:"fondos_ejecutados"`
	BudgetAvailable   float64                `json:"fondos_disponibles"`
	EfficiencyPct     float64                `json:"eficiencia_pct"`
	Detail            []ReportRow            `json:"detalle"`
}

// ReportRow is one event's line in the report detail table.
type ReportRow struct {
	EventoID      string                `json:"evento_id"`
	Titulo        string                `json:"titulo"`
	Fecha         string                `json:"fecha"`
	Categoria     string                `json:"categoria"`
	Inscritos     int                   `json:"inscritos"`
	CupoMaximo    int                   `json:"cupo_maximo"`
	AttendancePct float64               `json:"asistencia_pct"`
	Presupuesto   float64               `json:"presupuesto_max"`
	Gastado       float64               `json:"presupuesto_actual"`
	Estado        constants.EventStatus `json:"estado"`
	EfficiencyPct float64               `json:"eficiencia_pct"`
}
