package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// CategoryRepository manages the open category list.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context) ([]gormModels.Category, error) {
	var cats []gormModels.Category

	err := r.db.WithContext(ctx).
		Where("estado = ?", true).
		Order("nombre ASC").
		Find(&cats).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return cats, nil
}

// Ensure persists the category if it doesn't exist yet. The event form
// allows free-typed categories, so the enumeration grows lazily.
func (r *CategoryRepository) Ensure(ctx context.Context, nombre string) error {
	var existing gormModels.Category

	err := r.db.WithContext(ctx).
		Where("nombre = ?", nombre).
		First(&existing).Error

	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check category: %w", err)
	}

	cat := gormModels.Category{Nombre: nombre, Activo: true}
	if err := r.db.WithContext(ctx).Create(&cat).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
