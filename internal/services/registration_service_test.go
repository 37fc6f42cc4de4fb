package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/db/repositories"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.User{}, &gormModels.Event{}, &gormModels.Registration{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func newRegistrationService(t *testing.T, db *gorm.DB, enforceCapacity bool) *RegistrationService {
	t.Helper()
	return NewRegistrationService(
		repositories.NewRegistrationRepository(db),
		repositories.NewEventRepository(db),
		enforceCapacity,
	)
}

func seedEvent(t *testing.T, db *gorm.DB, cupo int) *gormModels.Event {
	t.Helper()
	event := &gormModels.Event{
		Titulo:     "Taller de Lectura",
		Fecha:      time.Now().AddDate(0, 0, 7),
		CupoMaximo: cupo,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}
	return event
}

func seedUser(t *testing.T, db *gorm.DB, authID string) *gormModels.User {
	t.Helper()
	user := &gormModels.User{
		AuthID: authID,
		Nombre: "Test User",
		Rol:    constants.RoleParticipante,
		Estado: constants.AccountActivo,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func TestRegistrationService_RegisterCancelReregister(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db, false)
	ctx := context.Background()

	event := seedEvent(t, db, 25)
	user := seedUser(t, db, "auth-1")

	if err := svc.Register(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	count, err := svc.CountActive(ctx, event.ID)
	if err != nil {
		t.Fatalf("CountActive failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 active registration, got %d", count)
	}

	var firstReg gormModels.Registration
	if err := db.Where("usuario_id = ? AND evento_id = ?", user.ID, event.ID).First(&firstReg).Error; err != nil {
		t.Fatalf("Registration row not found: %v", err)
	}
	firstTimestamp := firstReg.FechaInscripcion

	if err := svc.Cancel(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	count, _ = svc.CountActive(ctx, event.ID)
	if count != 0 {
		t.Errorf("Expected 0 active after cancel, got %d", count)
	}

	// The row is flipped, never deleted.
	var rows int64
	db.Model(&gormModels.Registration{}).
		Where("usuario_id = ? AND evento_id = ?", user.ID, event.ID).
		Count(&rows)
	if rows != 1 {
		t.Fatalf("Expected exactly 1 ledger row, found %d", rows)
	}

	time.Sleep(10 * time.Millisecond)

	if err := svc.Register(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Re-register failed: %v", err)
	}

	var reused gormModels.Registration
	if err := db.Where("usuario_id = ? AND evento_id = ?", user.ID, event.ID).First(&reused).Error; err != nil {
		t.Fatalf("Registration row not found after re-register: %v", err)
	}
	if reused.ID != firstReg.ID {
		t.Error("Re-registration created a new row instead of reusing the pair's row")
	}
	if reused.Estado != constants.RegistrationInscrito {
		t.Errorf("Expected Inscrito after re-register, got %s", reused.Estado)
	}
	if !reused.FechaInscripcion.After(firstTimestamp) {
		t.Error("Re-registration should refresh fecha_inscripcion")
	}
}

func TestRegistrationService_DoubleRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db, false)
	ctx := context.Background()

	event := seedEvent(t, db, 25)
	user := seedUser(t, db, "auth-1")

	if err := svc.Register(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := svc.Register(ctx, user.ID, event.ID); !errors.Is(err, ErrAlreadyRegistered) {
		t.Errorf("Expected ErrAlreadyRegistered, got %v", err)
	}

	count, _ := svc.CountActive(ctx, event.ID)
	if count != 1 {
		t.Errorf("Double register must not add rows, count = %d", count)
	}
}

func TestRegistrationService_EventNotOpen(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db, false)
	ctx := context.Background()

	user := seedUser(t, db, "auth-1")

	pastEvent := &gormModels.Event{
		Titulo:     "Evento Pasado",
		Fecha:      time.Now().AddDate(0, 0, -3),
		CupoMaximo: 25,
	}
	if err := db.Create(pastEvent).Error; err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}

	if err := svc.Register(ctx, user.ID, pastEvent.ID); !errors.Is(err, ErrEventNotOpen) {
		t.Errorf("Expected ErrEventNotOpen for completed event, got %v", err)
	}

	cancelled := constants.EventCancelado
	cancelledEvent := &gormModels.Event{
		Titulo:       "Evento Cancelado",
		Fecha:        time.Now().AddDate(0, 0, 7),
		CupoMaximo:   25,
		EstadoManual: &cancelled,
	}
	if err := db.Create(cancelledEvent).Error; err != nil {
		t.Fatalf("Failed to seed event: %v", err)
	}

	if err := svc.Register(ctx, user.ID, cancelledEvent.ID); !errors.Is(err, ErrEventNotOpen) {
		t.Errorf("Expected ErrEventNotOpen for cancelled event, got %v", err)
	}
}

func TestRegistrationService_CapacityAdvisoryByDefault(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db, false)
	ctx := context.Background()

	event := seedEvent(t, db, 2)

	for i := 0; i < 3; i++ {
		user := seedUser(t, db, "auth-"+string(rune('a'+i)))
		if err := svc.Register(ctx, user.ID, event.ID); err != nil {
			t.Fatalf("Register %d failed with enforcement off: %v", i, err)
		}
	}

	count, _ := svc.CountActive(ctx, event.ID)
	if count != 3 {
		t.Errorf("Expected overbooked count 3, got %d", count)
	}
}

func TestRegistrationService_CapacityEnforced(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db, true)
	ctx := context.Background()

	event := seedEvent(t, db, 2)

	first := seedUser(t, db, "auth-1")
	second := seedUser(t, db, "auth-2")
	third := seedUser(t, db, "auth-3")

	if err := svc.Register(ctx, first.ID, event.ID); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := svc.Register(ctx, second.ID, event.ID); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := svc.Register(ctx, third.ID, event.ID); !errors.Is(err, ErrEventFull) {
		t.Errorf("Expected ErrEventFull, got %v", err)
	}

	// Cancelled seats free up under enforcement.
	if err := svc.Cancel(ctx, first.ID, event.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if err := svc.Register(ctx, third.ID, event.ID); err != nil {
		t.Errorf("Register after a seat freed up failed: %v", err)
	}
}

func TestRegistrationService_CancelWithoutRegistration(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db, false)
	ctx := context.Background()

	event := seedEvent(t, db, 25)
	user := seedUser(t, db, "auth-1")

	if err := svc.Cancel(ctx, user.ID, event.ID); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Expected ErrNotRegistered, got %v", err)
	}

	// Cancel twice: second hits the already-cancelled row.
	if err := svc.Register(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := svc.Cancel(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if err := svc.Cancel(ctx, user.ID, event.ID); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Expected ErrNotRegistered on second cancel, got %v", err)
	}
}

func TestRegistrationService_RefreshesCachedCount(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db, false)
	ctx := context.Background()

	event := seedEvent(t, db, 25)
	user := seedUser(t, db, "auth-1")

	if err := svc.Register(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var stored gormModels.Event
	if err := db.First(&stored, "id = ?", event.ID).Error; err != nil {
		t.Fatalf("Event not found: %v", err)
	}
	if stored.ParticipantesActual != 1 {
		t.Errorf("Cached counter not refreshed, got %d", stored.ParticipantesActual)
	}
}

func TestRegistrationService_MyEvents(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db, false)
	ctx := context.Background()

	event := seedEvent(t, db, 25)
	user := seedUser(t, db, "auth-1")

	if err := svc.Register(ctx, user.ID, event.ID); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	views, err := svc.MyEvents(ctx, user.ID)
	if err != nil {
		t.Fatalf("MyEvents failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("Expected 1 view, got %d", len(views))
	}
	if views[0].Titulo != event.Titulo {
		t.Errorf("Expected titulo %q, got %q", event.Titulo, views[0].Titulo)
	}
	if views[0].Estado != constants.EventActivo {
		t.Errorf("Expected effective status Activo, got %s", views[0].Estado)
	}
	if views[0].Inscrito != constants.RegistrationInscrito {
		t.Errorf("Expected registration status Inscrito, got %s", views[0].Inscrito)
	}
}
