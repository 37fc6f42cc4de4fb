package requests

// CreateUserRequest provisions a profile for an identity the auth provider
// already knows about. Admin only.
type CreateUserRequest struct {
	AuthID string `json:"auth_id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

type SetUserRoleRequest struct {
	Rol string `json:"rol"`
}

type SetUserStatusRequest struct {
	Estado string `json:"estado"`
}

type SetGeneralBudgetRequest struct {
	PresupuestoGeneral float64 `json:"presupuesto_general"`
}

type CreateCategoryRequest struct {
	Nombre string `json:"nombre"`
}
