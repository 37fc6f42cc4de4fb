package gorm

// Category is an open enumeration: the event form persists a new row
// whenever a typed category doesn't match an existing one.
type Category struct {
	Nombre string `gorm:"column:nombre;primaryKey" json:"nombre"`
	Activo bool   `gorm:"column:estado;default:true" json:"activo"`
}

func (Category) TableName() string {
	return "categorias"
}
