package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "fundaevento/plataforma/internal/models/gorm"
)

const budgetConfigID = 1

// BudgetConfigRepository manages the configuracion singleton.
type BudgetConfigRepository struct {
	db *gorm.DB
}

func NewBudgetConfigRepository(db *gorm.DB) *BudgetConfigRepository {
	return &BudgetConfigRepository{db: db}
}

// Get returns the singleton, creating a zero row on first access so the
// Admin screen always has something to edit.
func (r *BudgetConfigRepository) Get(ctx context.Context) (*gormModels.BudgetConfig, error) {
	var cfg gormModels.BudgetConfig

	err := r.db.WithContext(ctx).
		Where("id = ?", budgetConfigID).
		First(&cfg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = gormModels.BudgetConfig{ID: budgetConfigID, PresupuestoGeneral: 0}
		if err := r.db.WithContext(ctx).Create(&cfg).Error; err != nil {
			return nil, fmt.Errorf("failed to seed budget config: %w", err)
		}
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budget config: %w", err)
	}

	return &cfg, nil
}

// Set overwrites the organization-wide budget figure.
func (r *BudgetConfigRepository) Set(ctx context.Context, presupuestoGeneral float64) error {
	if _, err := r.Get(ctx); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Model(&gormModels.BudgetConfig{}).
		Where("id = ?", budgetConfigID).
		Update("presupuesto_general", presupuestoGeneral).Error

	if err != nil {
		return fmt.Errorf("failed to update budget config: %w", err)
	}
	return nil
}
