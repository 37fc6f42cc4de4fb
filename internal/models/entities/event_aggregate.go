package entities

import (
	"time"

	"fundaevento/plataforma/internal/constants"
)

// EventAggregateRow is one event as seen by the report engine: base fields
// plus the live Inscrito count computed from the ledger, never the stored
// cache column.
type EventAggregateRow struct {
	ID                string                 `db:"id"`
	Titulo            string                 `db:"titulo"`
	Fecha             time.Time              `db:"fecha"`
	Categoria         string                 `db:"categoria"`
	CupoMaximo        int                    `db:"cupo_maximo"`
	PresupuestoMax    float64                `db:"presupuesto_max"`
	PresupuestoActual float64                `db:"presupuesto_actual"`
	EstadoManual      *constants.EventStatus `db:"estado_manual"`
	Inscritos         int                    `db:"inscritos"`
}
