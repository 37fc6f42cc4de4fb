package constants

type (
	APIStatus    string
	CachePrefix  string
	BudgetSource string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixCategorias    CachePrefix = "CATEGORIAS"
	CachePrefixPresupuesto   CachePrefix = "PRESUPUESTO_GENERAL"
	CachePrefixPerfilUsuario CachePrefix = "PERFIL_"

	// BudgetSource tags which figure a report's budget_total came from:
	// the organization-wide configuracion singleton, or the sum of the
	// scoped events' own budgets. The two must never be conflated.
	BudgetSourceGeneralConfig BudgetSource = "general_config"
	BudgetSourceOwnEvents     BudgetSource = "own_events"
)
