package auth

import (
	"testing"

	"fundaevento/plataforma/internal/constants"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

func eventOwnedBy(coordinadorID string) *gormModels.Event {
	return &gormModels.Event{
		ID:            "ev-1",
		Titulo:        "Jornada de Limpieza",
		CoordinadorID: &coordinadorID,
	}
}

func TestCapabilitiesFor_Admin(t *testing.T) {
	caps := CapabilitiesFor(constants.RoleAdmin, "admin-1", eventOwnedBy("coord-1"))

	if !caps.CanEdit || !caps.CanDelete || !caps.CanChangeStatus {
		t.Error("Admin must manage every event regardless of ownership")
	}
	if !caps.CanViewBudget {
		t.Error("Admin must see budget figures")
	}
	if caps.CanRegister {
		t.Error("Admin does not self-register")
	}
}

func TestCapabilitiesFor_CoordinatorOwnership(t *testing.T) {
	event := eventOwnedBy("coord-a")

	own := CapabilitiesFor(constants.RoleCoordinador, "coord-a", event)
	if !own.CanEdit || !own.CanDelete || !own.CanChangeStatus {
		t.Error("Coordinator must manage their own event")
	}
	if !own.CanViewBudget {
		t.Error("Coordinator must see budget figures")
	}

	other := CapabilitiesFor(constants.RoleCoordinador, "coord-b", event)
	if other.CanEdit || other.CanDelete || other.CanChangeStatus {
		t.Error("Coordinator must not manage another coordinator's event")
	}
	if !other.CanViewBudget {
		t.Error("Budget visibility is role-wide, not ownership-scoped")
	}

	orphan := CapabilitiesFor(constants.RoleCoordinador, "coord-a", &gormModels.Event{ID: "ev-2"})
	if orphan.CanEdit {
		t.Error("No owner on record means no coordinator write access")
	}
}

func TestCapabilitiesFor_Participant(t *testing.T) {
	caps := CapabilitiesFor(constants.RoleParticipante, "part-1", eventOwnedBy("coord-1"))

	if !caps.CanRegister {
		t.Error("Participant must be able to self-register")
	}
	if caps.CanEdit || caps.CanDelete || caps.CanChangeStatus {
		t.Error("Participant must have no write access")
	}
	if caps.CanViewBudget {
		t.Error("Participant must never see budget figures")
	}
}

func TestCapabilitiesFor_UnknownRole(t *testing.T) {
	caps := CapabilitiesFor(constants.Role("Invitado"), "x", eventOwnedBy("coord-1"))
	if caps != (EventCapabilities{}) {
		t.Errorf("Unknown role must get the empty action set, got %+v", caps)
	}
}

func TestCanManageEvent(t *testing.T) {
	event := eventOwnedBy("coord-a")

	if !CanManageEvent(constants.RoleAdmin, "anyone", event) {
		t.Error("Admin manages all events")
	}
	if !CanManageEvent(constants.RoleCoordinador, "coord-a", event) {
		t.Error("Owner coordinator manages their event")
	}
	if CanManageEvent(constants.RoleCoordinador, "coord-b", event) {
		t.Error("Non-owner coordinator must be denied")
	}
	if CanManageEvent(constants.RoleParticipante, "part-1", event) {
		t.Error("Participant must be denied")
	}
}

func TestRoleCapabilitiesFor(t *testing.T) {
	admin := RoleCapabilitiesFor(constants.RoleAdmin)
	if !admin.CanManageUsers || !admin.CanEditBudgetConfig || !admin.CanViewReports {
		t.Error("Admin must hold the full management set")
	}
	if admin.CanRegisterInEvents {
		t.Error("Admin does not self-register")
	}

	coord := RoleCapabilitiesFor(constants.RoleCoordinador)
	if !coord.CanCreateEvents || !coord.CanViewReports {
		t.Error("Coordinator must create events and view reports")
	}
	if coord.CanManageUsers || coord.CanEditBudgetConfig {
		t.Error("Coordinator must not hold Admin-only capabilities")
	}

	part := RoleCapabilitiesFor(constants.RoleParticipante)
	if !part.CanRegisterInEvents {
		t.Error("Participant must self-register")
	}
	if part.CanCreateEvents || part.CanViewReports {
		t.Error("Participant must not hold management capabilities")
	}

	if RoleCapabilitiesFor(constants.Role("Invitado")) != (RoleCapabilities{}) {
		t.Error("Unknown role must get the empty set")
	}
}

func TestNavigationFor(t *testing.T) {
	admin := NavigationFor(constants.RoleAdmin)
	if len(admin) == 0 {
		t.Fatal("Admin navigation is empty")
	}
	found := false
	for _, section := range admin {
		if section == "usuarios" {
			found = true
		}
	}
	if !found {
		t.Error("Admin navigation must include usuarios")
	}

	participant := NavigationFor(constants.RoleParticipante)
	for _, section := range participant {
		if section == "usuarios" || section == "presupuesto" || section == "reportes" {
			t.Errorf("Participant navigation must not include %s", section)
		}
	}

	if NavigationFor(constants.Role("Invitado")) != nil {
		t.Error("Unknown role gets no navigation")
	}
}
