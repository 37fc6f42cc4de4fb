package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fundaevento/plataforma/internal/constants"
)

// User is a platform profile. Exactly one row exists per external auth
// identity (auth_id); the auth provider owns credentials, this table owns
// the application-level name, role, and account state.
type User struct {
	ID        string                  `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	AuthID    string                  `gorm:"column:auth_id;uniqueIndex" json:"auth_id"`
	Nombre    string                  `gorm:"column:nombre" json:"nombre"`
	Email     string                  `gorm:"column:email" json:"email"`
	Rol       constants.Role          `gorm:"column:rol" json:"rol"`
	Estado    constants.AccountStatus `gorm:"column:estado;default:Activo" json:"estado"`
	CreatedAt time.Time               `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	// Relationships
	Registrations []Registration `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
