package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/models/dtos/responses"
	"fundaevento/plataforma/internal/models/entities"
)

// ReportScope selects the aggregation variant. The two variants use
// different budget-total sources and are never conflated: admin reports
// read the organization-wide configuracion singleton, coordinator
// reports sum the coordinator's own event budgets.
type ReportScope struct {
	CoordinadorID string // empty = fleet-wide (admin)
}

// ReportFilters narrow the event set before aggregation. Totals are
// always recomputed over the currently filtered set.
type ReportFilters struct {
	Periodo   int // calendar year, 0 = all
	Categoria string
}

// ReportStore is the data the engine aggregates over. Implemented by the
// sqlx report repository; stubbed in tests.
type ReportStore interface {
	EventRows(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error)
	GeneralBudget(ctx context.Context) (float64, error)
}

// ReportService computes per-event and aggregate metrics from the event
// table and the registration ledger.
type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// Build aggregates the filtered event set into a report. Event rows and
// the general budget figure are fetched concurrently; the budget fetch is
// skipped entirely for coordinator scope.
func (s *ReportService) Build(ctx context.Context, scope ReportScope, f ReportFilters) (*responses.Report, error) {
	var (
		rows          []entities.EventAggregateRow
		generalBudget float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.store.EventRows(gctx, scope.CoordinadorID, f.Categoria, f.Periodo)
		return err
	})
	if scope.CoordinadorID == "" {
		g.Go(func() error {
			var err error
			generalBudget, err = s.store.GeneralBudget(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	now := time.Now()
	report := &responses.Report{
		Periodo:   f.Periodo,
		Categoria: f.Categoria,
		Detail:    make([]responses.ReportRow, 0, len(rows)),
	}

	var totalCapacity int
	var ownBudgetTotal float64

	for _, row := range rows {
		estado := EffectiveStatusFrom(row.EstadoManual, row.Fecha, now)

		report.TotalEvents++
		// Tallied per effective status so a manually cancelled event is
		// neither active nor completed.
		switch estado {
		case constants.EventActivo:
			report.ActiveEvents++
		case constants.EventCompletado:
			report.CompletedEvents++
		}
		report.TotalParticipants += row.Inscritos
		report.BudgetSpent += row.PresupuestoActual
		totalCapacity += row.CupoMaximo
		ownBudgetTotal += row.PresupuestoMax

		report.Detail = append(report.Detail, responses.ReportRow{
			EventoID:      row.ID,
			Titulo:        row.Titulo,
			Fecha:         row.Fecha.Format("2006-01-02"),
			Categoria:     row.Categoria,
			Inscritos:     row.Inscritos,
			CupoMaximo:    row.CupoMaximo,
			AttendancePct: percentage(float64(row.Inscritos), float64(row.CupoMaximo)),
			Presupuesto:   row.PresupuestoMax,
			Gastado:       row.PresupuestoActual,
			Estado:        estado,
			EfficiencyPct: percentage(row.PresupuestoActual, row.PresupuestoMax),
		})
	}

	if scope.CoordinadorID == "" {
		report.Scope = "admin"
		report.BudgetSource = constants.BudgetSourceGeneralConfig
		report.BudgetTotal = generalBudget
	} else {
		report.Scope = "coordinador"
		report.BudgetSource = constants.BudgetSourceOwnEvents
		report.BudgetTotal = ownBudgetTotal
	}

	report.AvgAttendancePct = percentage(float64(report.TotalParticipants), float64(totalCapacity))
	// May go negative when spending exceeds the budget; not clamped.
	report.BudgetAvailable = report.BudgetTotal - report.BudgetSpent
	report.EfficiencyPct = percentage(report.BudgetSpent, report.BudgetTotal)

	return report, nil
}

// percentage returns numerator/denominator * 100, and 0 (never NaN) when
// the denominator is 0.
func percentage(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	pct := numerator / denominator * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return pct
}
