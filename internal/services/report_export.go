package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"fundaevento/plataforma/internal/models/dtos/responses"
)

const (
	sheetResumen = "Resumen"
	sheetDetalle = "Detalle de Eventos"
)

// ExportReport serializes a report as an xlsx workbook with two sheets:
// "Resumen" with the scalar summary as key/value rows, and "Detalle de
// Eventos" with one record row per event.
func ExportReport(report *responses.Report, titulo string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := buildResumenSheet(f, report, titulo); err != nil {
		return nil, err
	}
	if err := buildDetalleSheet(f, report); err != nil {
		return nil, err
	}

	// excelize starts with a default "Sheet1"; drop it.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("export report: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export report: %w", err)
	}
	return buf.Bytes(), nil
}

func buildResumenSheet(f *excelize.File, report *responses.Report, titulo string) error {
	if _, err := f.NewSheet(sheetResumen); err != nil {
		return fmt.Errorf("export report: %w", err)
	}

	rows := [][]interface{}{
		{titulo},
		{},
		{"Total de Eventos", report.TotalEvents},
		{"Eventos Completados", report.CompletedEvents},
		{"Total Participantes", report.TotalParticipants},
		{"Promedio de Asistencia", fmt.Sprintf("%.1f%%", report.AvgAttendancePct)},
		{"Presupuesto Total", report.BudgetTotal},
		{"Fondos Ejecutados", report.BudgetSpent},
		{"Fondos Disponibles", report.BudgetAvailable},
		{"Eficiencia Presupuestaria", fmt.Sprintf("%.1f%%", report.EfficiencyPct)},
		{"Fuente del Presupuesto", string(report.BudgetSource)},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		if err := f.SetSheetRow(sheetResumen, cell, &row); err != nil {
			return fmt.Errorf("export report: %w", err)
		}
	}
	return nil
}

func buildDetalleSheet(f *excelize.File, report *responses.Report) error {
	if _, err := f.NewSheet(sheetDetalle); err != nil {
		return fmt.Errorf("export report: %w", err)
	}

	header := []interface{}{
		"Evento", "Fecha", "Categoría", "Participantes", "Cupo Máximo",
		"Asistencia (%)", "Presupuesto Asignado", "Fondos Gastados",
		"Estado", "Eficiencia (%)",
	}
	if err := f.SetSheetRow(sheetDetalle, "A1", &header); err != nil {
		return fmt.Errorf("export report: %w", err)
	}

	for i, row := range report.Detail {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}
		record := []interface{}{
			row.Titulo,
			row.Fecha,
			row.Categoria,
			row.Inscritos,
			row.CupoMaximo,
			roundPct(row.AttendancePct),
			row.Presupuesto,
			row.Gastado,
			string(row.Estado),
			roundPct(row.EfficiencyPct),
		}
		if err := f.SetSheetRow(sheetDetalle, cell, &record); err != nil {
			return fmt.Errorf("export report: %w", err)
		}
	}
	return nil
}

func roundPct(pct float64) float64 {
	return float64(int(pct*10+0.5)) / 10
}
