package constants

const (
	// EventAggregateRows feeds the report engine: one row per event with
	// the live Inscrito count from the ledger. The stored
	// participantes_actual column is deliberately not read here.
	EventAggregateRows = `
	SELECT e.id,
	       e.titulo,
	       e.fecha,
	       e.categoria,
	       e.cupo_maximo,
	       e.presupuesto_max,
	       e.presupuesto_actual,
	       e.estado_manual,
	       COUNT(p.id) FILTER (WHERE p.estado = 'Inscrito') AS inscritos
	FROM eventos e
	LEFT JOIN participantes p ON p.evento_id = e.id
	WHERE ($1::uuid IS NULL OR e.coordinador_id = $1)
	  AND ($2::text = '' OR e.categoria = $2)
	  AND ($3::int = 0 OR EXTRACT(YEAR FROM e.fecha)::int = $3)
	GROUP BY e.id
	ORDER BY e.fecha ASC
	`

	GeneralBudget = `
	SELECT presupuesto_general FROM configuracion WHERE id = 1
	`
)
