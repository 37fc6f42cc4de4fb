package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/models/entities"
)

// ReportRepository runs the raw aggregation queries behind the report
// engine on sqlx. CRUD stays on GORM; the grouped ledger join is plain
// SQL.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// EventRows returns one aggregate row per event in scope. coordinadorID
// empty means fleet-wide; categoria/periodo zero values mean unfiltered.
func (r *ReportRepository) EventRows(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error) {
	var coord sql.NullString
	if coordinadorID != "" {
		coord = sql.NullString{String: coordinadorID, Valid: true}
	}

	var rows []entities.EventAggregateRow
	err := r.db.SelectContext(ctx, &rows, constants.EventAggregateRows, coord, categoria, periodo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event aggregate rows: %w", err)
	}

	return rows, nil
}

// GeneralBudget reads the configuracion singleton. A missing row reads as
// zero, matching a fresh install before the Admin has set a figure.
func (r *ReportRepository) GeneralBudget(ctx context.Context) (float64, error) {
	var presupuesto float64

	err := r.db.GetContext(ctx, &presupuesto, constants.GeneralBudget)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to fetch general budget: %w", err)
	}

	return presupuesto, nil
}
