package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/models/entities"
)

// Mock ReportStore
type mockReportStore struct {
	eventRowsFunc     func(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error)
	generalBudgetFunc func(ctx context.Context) (float64, error)
}

func (m *mockReportStore) EventRows(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error) {
	return m.eventRowsFunc(ctx, coordinadorID, categoria, periodo)
}

func (m *mockReportStore) GeneralBudget(ctx context.Context) (float64, error) {
	return m.generalBudgetFunc(ctx)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func sampleRows() []entities.EventAggregateRow {
	past := time.Now().AddDate(0, 0, -10)
	future := time.Now().AddDate(0, 0, 10)
	return []entities.EventAggregateRow{
		{
			ID: "ev-1", Titulo: "Feria de Salud", Fecha: past, Categoria: "Salud",
			CupoMaximo: 25, Inscritos: 19,
			PresupuestoMax: 5000, PresupuestoActual: 3200,
		},
		{
			ID: "ev-2", Titulo: "Campaña de Vacunación", Fecha: past, Categoria: "Salud",
			CupoMaximo: 50, Inscritos: 46,
			PresupuestoMax: 8000, PresupuestoActual: 6100,
		},
		{
			ID: "ev-3", Titulo: "Taller Educativo", Fecha: future, Categoria: "Educación",
			CupoMaximo: 32, Inscritos: 32,
			PresupuestoMax: 4000, PresupuestoActual: 3200,
		},
	}
}

func TestReportService_AdminScope(t *testing.T) {
	store := &mockReportStore{
		eventRowsFunc: func(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error) {
			if coordinadorID != "" {
				t.Errorf("Admin scope should pass empty coordinator filter, got %q", coordinadorID)
			}
			return sampleRows(), nil
		},
		generalBudgetFunc: func(ctx context.Context) (float64, error) {
			return 16000, nil
		},
	}

	svc := NewReportService(store)
	report, err := svc.Build(context.Background(), ReportScope{}, ReportFilters{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if report.Scope != "admin" {
		t.Errorf("Expected admin scope, got %s", report.Scope)
	}
	if report.BudgetSource != constants.BudgetSourceGeneralConfig {
		t.Errorf("Admin budget must come from the general config, got %s", report.BudgetSource)
	}
	if report.TotalEvents != 3 {
		t.Errorf("Expected 3 events, got %d", report.TotalEvents)
	}
	if report.CompletedEvents != 2 {
		t.Errorf("Expected 2 completed events, got %d", report.CompletedEvents)
	}
	if report.ActiveEvents != 1 {
		t.Errorf("Expected 1 active event, got %d", report.ActiveEvents)
	}
	if report.TotalParticipants != 97 {
		t.Errorf("Expected 97 participants, got %d", report.TotalParticipants)
	}
	// 97 / 107 capacity
	if !almostEqual(report.AvgAttendancePct, 90.65) {
		t.Errorf("Expected avg attendance ~90.65, got %v", report.AvgAttendancePct)
	}
	if report.BudgetTotal != 16000 {
		t.Errorf("Expected budget total 16000, got %v", report.BudgetTotal)
	}
	if report.BudgetSpent != 12500 {
		t.Errorf("Expected budget spent 12500, got %v", report.BudgetSpent)
	}
	if report.BudgetAvailable != 3500 {
		t.Errorf("Expected budget available 3500, got %v", report.BudgetAvailable)
	}
	if !almostEqual(report.EfficiencyPct, 78.125) {
		t.Errorf("Expected efficiency 78.125, got %v", report.EfficiencyPct)
	}

	if len(report.Detail) != 3 {
		t.Fatalf("Expected 3 detail rows, got %d", len(report.Detail))
	}
	if !almostEqual(report.Detail[0].AttendancePct, 76) {
		t.Errorf("Expected row attendance 76, got %v", report.Detail[0].AttendancePct)
	}
	if !almostEqual(report.Detail[0].EfficiencyPct, 64) {
		t.Errorf("Expected row efficiency 64, got %v", report.Detail[0].EfficiencyPct)
	}
	if report.Detail[0].Estado != constants.EventCompletado {
		t.Errorf("Past event should report Completado, got %s", report.Detail[0].Estado)
	}
	if report.Detail[2].Estado != constants.EventActivo {
		t.Errorf("Future event should report Activo, got %s", report.Detail[2].Estado)
	}
}

func TestReportService_CoordinatorScope(t *testing.T) {
	budgetCalled := false
	store := &mockReportStore{
		eventRowsFunc: func(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error) {
			if coordinadorID != "coord-1" {
				t.Errorf("Expected coordinator filter coord-1, got %q", coordinadorID)
			}
			return sampleRows()[:2], nil
		},
		generalBudgetFunc: func(ctx context.Context) (float64, error) {
			budgetCalled = true
			return 16000, nil
		},
	}

	svc := NewReportService(store)
	report, err := svc.Build(context.Background(), ReportScope{CoordinadorID: "coord-1"}, ReportFilters{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if budgetCalled {
		t.Error("Coordinator scope must never read the general budget")
	}
	if report.Scope != "coordinador" {
		t.Errorf("Expected coordinador scope, got %s", report.Scope)
	}
	if report.BudgetSource != constants.BudgetSourceOwnEvents {
		t.Errorf("Coordinator budget must come from own events, got %s", report.BudgetSource)
	}
	// 5000 + 8000 own budgets.
	if report.BudgetTotal != 13000 {
		t.Errorf("Expected budget total 13000, got %v", report.BudgetTotal)
	}
	if report.BudgetSpent != 9300 {
		t.Errorf("Expected budget spent 9300, got %v", report.BudgetSpent)
	}
	if report.BudgetAvailable != 3700 {
		t.Errorf("Expected budget available 3700, got %v", report.BudgetAvailable)
	}
}

func TestReportService_CancelledEventIsNeitherActiveNorCompleted(t *testing.T) {
	cancelado := constants.EventCancelado
	store := &mockReportStore{
		eventRowsFunc: func(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error) {
			return []entities.EventAggregateRow{
				{ID: "ev-1", Titulo: "Evento Vigente", Fecha: time.Now().AddDate(0, 0, 10),
					CupoMaximo: 20, Inscritos: 5, PresupuestoMax: 1000},
				{ID: "ev-2", Titulo: "Evento Suspendido", Fecha: time.Now().AddDate(0, 0, 10),
					CupoMaximo: 20, Inscritos: 5, PresupuestoMax: 1000,
					EstadoManual: &cancelado},
				{ID: "ev-3", Titulo: "Evento Pasado", Fecha: time.Now().AddDate(0, 0, -10),
					CupoMaximo: 20, Inscritos: 5, PresupuestoMax: 1000},
			}, nil
		},
		generalBudgetFunc: func(ctx context.Context) (float64, error) {
			return 5000, nil
		},
	}

	svc := NewReportService(store)
	report, err := svc.Build(context.Background(), ReportScope{}, ReportFilters{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if report.TotalEvents != 3 {
		t.Errorf("Expected 3 events, got %d", report.TotalEvents)
	}
	if report.ActiveEvents != 1 {
		t.Errorf("Cancelled event counted as active: ActiveEvents = %d, want 1", report.ActiveEvents)
	}
	if report.CompletedEvents != 1 {
		t.Errorf("Expected 1 completed, got %d", report.CompletedEvents)
	}
	if report.Detail[1].Estado != constants.EventCancelado {
		t.Errorf("Expected Cancelado detail row, got %s", report.Detail[1].Estado)
	}
}

func TestReportService_EmptySet(t *testing.T) {
	store := &mockReportStore{
		eventRowsFunc: func(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error) {
			return nil, nil
		},
		generalBudgetFunc: func(ctx context.Context) (float64, error) {
			return 0, nil
		},
	}

	svc := NewReportService(store)
	report, err := svc.Build(context.Background(), ReportScope{}, ReportFilters{Periodo: 2031})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if report.TotalEvents != 0 {
		t.Errorf("Expected 0 events, got %d", report.TotalEvents)
	}
	// Zero capacity and zero budget divide to 0, never NaN.
	if report.AvgAttendancePct != 0 {
		t.Errorf("Expected 0 attendance on empty set, got %v", report.AvgAttendancePct)
	}
	if report.EfficiencyPct != 0 {
		t.Errorf("Expected 0 efficiency on empty set, got %v", report.EfficiencyPct)
	}
	if len(report.Detail) != 0 {
		t.Errorf("Expected empty detail, got %d rows", len(report.Detail))
	}
}

func TestReportService_OverspentGoesNegative(t *testing.T) {
	store := &mockReportStore{
		eventRowsFunc: func(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error) {
			return []entities.EventAggregateRow{
				{ID: "ev-1", Fecha: time.Now(), CupoMaximo: 10, Inscritos: 5,
					PresupuestoMax: 1000, PresupuestoActual: 1500},
			}, nil
		},
		generalBudgetFunc: func(ctx context.Context) (float64, error) {
			return 1000, nil
		},
	}

	svc := NewReportService(store)
	report, err := svc.Build(context.Background(), ReportScope{}, ReportFilters{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if report.BudgetAvailable != -500 {
		t.Errorf("Overspend must surface as negative, got %v", report.BudgetAvailable)
	}
}

func TestReportService_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("query failed")
	store := &mockReportStore{
		eventRowsFunc: func(ctx context.Context, coordinadorID, categoria string, periodo int) ([]entities.EventAggregateRow, error) {
			return nil, boom
		},
		generalBudgetFunc: func(ctx context.Context) (float64, error) {
			return 0, nil
		},
	}

	svc := NewReportService(store)
	if _, err := svc.Build(context.Background(), ReportScope{}, ReportFilters{}); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped store error, got %v", err)
	}
}
