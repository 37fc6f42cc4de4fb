package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fundaevento/plataforma/internal/constants"
)

// Registration is one participant's enrollment record for one event.
// There is at most one row per (usuario, evento) pair; cancellation flips
// Estado to Cancelado and re-enrollment flips it back, so history is never
// deleted and at most one active row can exist.
type Registration struct {
	ID               string                       `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	EventoID         string                       `gorm:"column:evento_id;type:uuid;uniqueIndex:idx_evento_usuario" json:"evento_id"`
	UsuarioID        string                       `gorm:"column:usuario_id;type:uuid;uniqueIndex:idx_evento_usuario" json:"usuario_id"`
	Estado           constants.RegistrationStatus `gorm:"column:estado" json:"estado"`
	FechaInscripcion time.Time                    `gorm:"column:fecha_inscripcion" json:"fecha_inscripcion"`

	// Relationships
	Evento  Event `gorm:"foreignKey:EventoID" json:"-"`
	Usuario User  `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (Registration) TableName() string {
	return "participantes"
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
