package auth

import (
	"fundaevento/plataforma/internal/constants"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// EventCapabilities is what one user may do with one event.
type EventCapabilities struct {
	CanEdit         bool
	CanDelete       bool
	CanChangeStatus bool
	CanRegister     bool
	CanViewBudget   bool
}

// CapabilitiesFor maps (role, event, user) to an action set. The switch
// over Role is exhaustive: adding a role without deciding its
// capabilities here is a compile-visible gap, not a silent default.
//
// Coordinators get write access only to events they own; admins to all.
// Participants only ever self-register and never see budget figures.
func CapabilitiesFor(role constants.Role, userID string, event *gormModels.Event) EventCapabilities {
	switch role {
	case constants.RoleAdmin:
		return EventCapabilities{
			CanEdit:         true,
			CanDelete:       true,
			CanChangeStatus: true,
			CanRegister:     false,
			CanViewBudget:   true,
		}
	case constants.RoleCoordinador:
		owns := event != nil && event.CoordinadorID != nil && *event.CoordinadorID == userID
		return EventCapabilities{
			CanEdit:         owns,
			CanDelete:       owns,
			CanChangeStatus: owns,
			CanRegister:     false,
			CanViewBudget:   true,
		}
	case constants.RoleParticipante:
		return EventCapabilities{
			CanRegister: true,
		}
	default:
		// Unknown roles get nothing. Identity resolution already rejects
		// them; this is the backstop.
		return EventCapabilities{}
	}
}

// CanManageEvent reports whether the user may edit, delete, or change the
// status of the event. Used by the service layer so ownership is enforced
// even if a route was miswired.
func CanManageEvent(role constants.Role, userID string, event *gormModels.Event) bool {
	c := CapabilitiesFor(role, userID, event)
	return c.CanEdit
}

// RoleCapabilities is the role-wide action set, independent of any one
// event. Returned with the session so the UI shell can gate whole
// sections without a second round trip.
type RoleCapabilities struct {
	CanCreateEvents     bool `json:"can_create_events"`
	CanViewReports      bool `json:"can_view_reports"`
	CanManageUsers      bool `json:"can_manage_users"`
	CanEditBudgetConfig bool `json:"can_edit_budget_config"`
	CanManageCategories bool `json:"can_manage_categories"`
	CanRegisterInEvents bool `json:"can_register_in_events"`
}

// RoleCapabilitiesFor maps a role to its role-wide action set. Same
// exhaustive-switch rule as CapabilitiesFor.
func RoleCapabilitiesFor(role constants.Role) RoleCapabilities {
	switch role {
	case constants.RoleAdmin:
		return RoleCapabilities{
			CanCreateEvents:     true,
			CanViewReports:      true,
			CanManageUsers:      true,
			CanEditBudgetConfig: true,
			CanManageCategories: true,
		}
	case constants.RoleCoordinador:
		return RoleCapabilities{
			CanCreateEvents: true,
			CanViewReports:  true,
		}
	case constants.RoleParticipante:
		return RoleCapabilities{
			CanRegisterInEvents: true,
		}
	default:
		return RoleCapabilities{}
	}
}

// NavigationFor lists the dashboard sections visible to a role.
func NavigationFor(role constants.Role) []string {
	switch role {
	case constants.RoleAdmin:
		return []string{"dashboard", "eventos", "calendario", "usuarios", "categorias", "presupuesto", "reportes"}
	case constants.RoleCoordinador:
		return []string{"dashboard", "eventos", "calendario", "reportes"}
	case constants.RoleParticipante:
		return []string{"dashboard", "eventos", "calendario", "mis-eventos"}
	default:
		return nil
	}
}
