package services

import (
	"context"
	"errors"
	"testing"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/db/repositories"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

func TestIdentityService_Resolve(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository(db))
	ctx := context.Background()

	seeded := &gormModels.User{
		AuthID: "auth-known",
		Nombre: "Marta Rivas",
		Rol:    constants.RoleCoordinador,
		Estado: constants.AccountActivo,
	}
	if err := db.Create(seeded).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	user, err := svc.Resolve(ctx, "auth-known")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if user.ID != seeded.ID {
		t.Errorf("Resolved wrong profile: %s", user.ID)
	}
	if user.Rol != constants.RoleCoordinador {
		t.Errorf("Expected Coordinador, got %s", user.Rol)
	}
}

func TestIdentityService_NoProfileRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository(db))

	_, err := svc.Resolve(context.Background(), "auth-unknown")
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing profile, got %v", err)
	}
}

func TestIdentityService_UnknownRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository(db))

	bad := &gormModels.User{
		AuthID: "auth-bad-role",
		Nombre: "Rol Extraño",
		Rol:    constants.Role("SuperUsuario"),
		Estado: constants.AccountActivo,
	}
	if err := db.Create(bad).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), "auth-bad-role"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("Expected ErrUnknownRole, got %v", err)
	}
}

func TestIdentityService_InactiveAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIdentityService(repositories.NewUserRepository(db))

	inactive := &gormModels.User{
		AuthID: "auth-inactive",
		Nombre: "Cuenta Suspendida",
		Rol:    constants.RoleParticipante,
		Estado: constants.AccountInactivo,
	}
	if err := db.Create(inactive).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), "auth-inactive"); !errors.Is(err, ErrAccountInactive) {
		t.Errorf("Expected ErrAccountInactive, got %v", err)
	}
}
