package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/models/dtos/responses"
)

func TestExportReport_Workbook(t *testing.T) {
	report := &responses.Report{
		Scope:             "admin",
		TotalEvents:       2,
		CompletedEvents:   1,
		TotalParticipants: 65,
		AvgAttendancePct:  86.7,
		BudgetSource:      constants.BudgetSourceGeneralConfig,
		BudgetTotal:       16000,
		BudgetSpent:       9300,
		BudgetAvailable:   6700,
		EfficiencyPct:     58.1,
		Detail: []responses.ReportRow{
			{
				EventoID: "ev-1", Titulo: "Feria de Salud", Fecha: "2026-05-10",
				Categoria: "Salud", Inscritos: 19, CupoMaximo: 25,
				AttendancePct: 76, Presupuesto: 5000, Gastado: 3200,
				Estado: constants.EventCompletado, EfficiencyPct: 64,
			},
			{
				EventoID: "ev-2", Titulo: "Campaña de Vacunación", Fecha: "2026-09-15",
				Categoria: "Salud", Inscritos: 46, CupoMaximo: 50,
				AttendancePct: 92, Presupuesto: 8000, Gastado: 6100,
				Estado: constants.EventActivo, EfficiencyPct: 76.25,
			},
		},
	}

	data, err := ExportReport(report, "Reporte General de Eventos")
	if err != nil {
		t.Fatalf("ExportReport failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Expected non-empty workbook bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Exported bytes are not a valid workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %v", sheets)
	}
	if sheets[0] != "Resumen" || sheets[1] != "Detalle de Eventos" {
		t.Errorf("Unexpected sheet names: %v", sheets)
	}

	title, err := f.GetCellValue("Resumen", "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if title != "Reporte General de Eventos" {
		t.Errorf("Expected title in A1, got %q", title)
	}

	firstEvent, err := f.GetCellValue("Detalle de Eventos", "A2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if firstEvent != "Feria de Salud" {
		t.Errorf("Expected first detail row titulo, got %q", firstEvent)
	}

	rows, err := f.GetRows("Detalle de Eventos")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	// Header plus one row per event.
	if len(rows) != 3 {
		t.Errorf("Expected 3 rows in detail sheet, got %d", len(rows))
	}
}
