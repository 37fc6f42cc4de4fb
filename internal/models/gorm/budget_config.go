package gorm

// BudgetConfig is the process-wide singleton holding the manually set
// organization budget. It is independent of the summed per-event budgets
// and only Admins may write it. Always row id = 1.
type BudgetConfig struct {
	ID                 int     `gorm:"column:id;primaryKey" json:"id"`
	PresupuestoGeneral float64 `gorm:"column:presupuesto_general" json:"presupuesto_general"`
}

func (BudgetConfig) TableName() string {
	return "configuracion"
}
