package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fundaevento/plataforma/internal/constants"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// RegistrationRepository manages the participantes ledger with GORM.
type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// FindPair returns the single ledger row for (usuario, evento), active or
// cancelled, or ErrNotFound.
func (r *RegistrationRepository) FindPair(ctx context.Context, usuarioID, eventoID string) (*gormModels.Registration, error) {
	var reg gormModels.Registration

	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND evento_id = ?", usuarioID, eventoID).
		First(&reg).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch registration: %w", err)
	}

	return &reg, nil
}

// CountActive is the authoritative participant count for an event,
// recomputed from the ledger on every call.
func (r *RegistrationRepository) CountActive(ctx context.Context, eventoID string) (int, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Registration{}).
		Where("evento_id = ? AND estado = ?", eventoID, constants.RegistrationInscrito).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	return int(count), nil
}

// CountActiveByEvent returns active counts for a set of events in one
// query, keyed by event id. Events without registrations are absent.
func (r *RegistrationRepository) CountActiveByEvent(ctx context.Context, eventoIDs []string) (map[string]int, error) {
	if len(eventoIDs) == 0 {
		return map[string]int{}, nil
	}

	type row struct {
		EventoID string `gorm:"column:evento_id"`
		N        int    `gorm:"column:n"`
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&gormModels.Registration{}).
		Select("evento_id, COUNT(*) AS n").
		Where("evento_id IN ? AND estado = ?", eventoIDs, constants.RegistrationInscrito).
		Group("evento_id").
		Scan(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("failed to count registrations by event: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.EventoID] = r.N
	}
	return counts, nil
}

// Create inserts a fresh Inscrito row.
func (r *RegistrationRepository) Create(ctx context.Context, usuarioID, eventoID string) (*gormModels.Registration, error) {
	reg := &gormModels.Registration{
		EventoID:         eventoID,
		UsuarioID:        usuarioID,
		Estado:           constants.RegistrationInscrito,
		FechaInscripcion: time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return reg, nil
}

// SetStatus flips a ledger row's estado. Re-activation refreshes the
// enrollment timestamp.
func (r *RegistrationRepository) SetStatus(ctx context.Context, id string, estado constants.RegistrationStatus) error {
	updates := map[string]interface{}{"estado": estado}
	if estado == constants.RegistrationInscrito {
		updates["fecha_inscripcion"] = time.Now()
	}

	res := r.db.WithContext(ctx).
		Model(&gormModels.Registration{}).
		Where("id = ?", id).
		Updates(updates)

	if res.Error != nil {
		return fmt.Errorf("failed to update registration status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns a participant's rows with their events preloaded.
func (r *RegistrationRepository) ListByUser(ctx context.Context, usuarioID string) ([]gormModels.Registration, error) {
	var regs []gormModels.Registration

	err := r.db.WithContext(ctx).
		Preload("Evento").
		Where("usuario_id = ?", usuarioID).
		Order("fecha_inscripcion DESC").
		Find(&regs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	return regs, nil
}

// CountAllActive is the fleet-wide active registration total.
func (r *RegistrationRepository) CountAllActive(ctx context.Context) (int, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Registration{}).
		Where("estado = ?", constants.RegistrationInscrito).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count active registrations: %w", err)
	}

	return int(count), nil
}
