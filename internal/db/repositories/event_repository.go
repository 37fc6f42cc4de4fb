package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fundaevento/plataforma/internal/constants"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// EventFilters narrows event listings. Zero values mean "no filter".
type EventFilters struct {
	Categoria     string
	Periodo       int // calendar year
	CoordinadorID string
	Search        string
}

// EventRepository manages eventos rows with GORM.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*gormModels.Event, error) {
	var event gormModels.Event

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	return &event, nil
}

func (r *EventRepository) List(ctx context.Context, f EventFilters) ([]gormModels.Event, error) {
	q := r.db.WithContext(ctx).Model(&gormModels.Event{})

	if f.Categoria != "" {
		q = q.Where("categoria = ?", f.Categoria)
	}
	if f.CoordinadorID != "" {
		q = q.Where("coordinador_id = ?", f.CoordinadorID)
	}
	if f.Periodo != 0 {
		inicio := fmt.Sprintf("%04d-01-01", f.Periodo)
		fin := fmt.Sprintf("%04d-12-31", f.Periodo)
		q = q.Where("fecha >= ? AND fecha <= ?", inicio, fin)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("titulo LIKE ? OR descripcion LIKE ?", pattern, pattern)
	}

	var events []gormModels.Event
	if err := q.Order("fecha ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

func (r *EventRepository) Create(ctx context.Context, event *gormModels.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, event *gormModels.Event) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Event{}).
		Where("id = ?", event.ID).
		Select("titulo", "descripcion", "fecha", "hora", "ubicacion", "categoria",
			"cupo_maximo", "presupuesto_max", "presupuesto_actual").
		Updates(event)

	if res.Error != nil {
		return fmt.Errorf("failed to update event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetManualStatus sets or clears (estado == nil) the manual override.
func (r *EventRepository) SetManualStatus(ctx context.Context, id string, estado *constants.EventStatus) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Event{}).
		Where("id = ?", id).
		Update("estado_manual", estado)

	if res.Error != nil {
		return fmt.Errorf("failed to update manual status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Event{})

	if res.Error != nil {
		return fmt.Errorf("failed to delete event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RefreshParticipantCount rewrites the cached participantes_actual column
// from the ledger. Best effort: readers never trust the stored value, so
// a failure here is logged by the caller and otherwise ignored.
func (r *EventRepository) RefreshParticipantCount(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Event{}).
		Where("id = ?", id).
		Update("participantes_actual", r.db.
			Model(&gormModels.Registration{}).
			Select("COUNT(*)").
			Where("evento_id = ? AND estado = ?", id, constants.RegistrationInscrito)).Error

	if err != nil {
		return fmt.Errorf("failed to refresh participant count: %w", err)
	}
	return nil
}
