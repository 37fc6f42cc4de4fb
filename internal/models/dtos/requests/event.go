package requests

// SaveEventRequest covers both event creation and full edits.
type SaveEventRequest struct {
	Titulo         string  `json:"titulo"`
	Descripcion    string  `json:"descripcion"`
	Fecha          string  `json:"fecha"` // YYYY-MM-DD
	Hora           string  `json:"hora"`
	Ubicacion      string  `json:"ubicacion"`
	Categoria      string  `json:"categoria"`
	CupoMaximo     int     `json:"cupo_maximo"`
	PresupuestoMax float64 `json:"presupuesto_max"`
	// PresupuestoActual is editable by whoever can edit the event; funds
	// already executed against the budget.
	PresupuestoActual float64 `json:"presupuesto_actual"`
}

// SetEventStatusRequest sets or clears the manual status override. A null
// estado returns the event to date-derived status.
type SetEventStatusRequest struct {
	Estado *string `json:"estado"`
}
