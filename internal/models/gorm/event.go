package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fundaevento/plataforma/internal/constants"
)

// Event is a scheduled activity with a capacity and a budget.
//
// ParticipantesActual is a best-effort cache of the ledger count: it is
// refreshed after registration writes but every read path recomputes the
// real figure from participantes. EstadoManual, when set, overrides the
// date-derived status verbatim.
type Event struct {
	ID                  string                 `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Titulo              string                 `gorm:"column:titulo" json:"titulo"`
	Descripcion         string                 `gorm:"column:descripcion" json:"descripcion"`
	Fecha               time.Time              `gorm:"column:fecha;type:date" json:"fecha"`
	Hora                string                 `gorm:"column:hora" json:"hora"`
	Ubicacion           string                 `gorm:"column:ubicacion" json:"ubicacion"`
	Categoria           string                 `gorm:"column:categoria" json:"categoria"`
	CupoMaximo          int                    `gorm:"column:cupo_maximo" json:"cupo_maximo"`
	ParticipantesActual int                    `gorm:"column:participantes_actual;default:0" json:"-"`
	PresupuestoMax      float64                `gorm:"column:presupuesto_max" json:"presupuesto_max"`
	PresupuestoActual   float64                `gorm:"column:presupuesto_actual" json:"presupuesto_actual"`
	EstadoManual        *constants.EventStatus `gorm:"column:estado_manual" json:"estado_manual"`
	CoordinadorID       *string                `gorm:"column:coordinador_id;type:uuid" json:"coordinador_id"`
	CreatedAt           time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relationships
	Coordinador   *User          `gorm:"foreignKey:CoordinadorID" json:"-"`
	Registrations []Registration `gorm:"foreignKey:EventoID" json:"-"`
}

func (Event) TableName() string {
	return "eventos"
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
