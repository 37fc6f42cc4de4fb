package api

import (
	"fmt"
	"net/http"
	"strconv"

	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/models/dtos/responses"
	"fundaevento/plataforma/internal/services"
)

func reportFilters(r *http.Request) services.ReportFilters {
	q := r.URL.Query()
	periodo, _ := strconv.Atoi(q.Get("periodo"))
	return services.ReportFilters{
		Periodo:   periodo,
		Categoria: q.Get("categoria"),
	}
}

// AdminReport handles GET /api/v1/reportes: fleet-wide aggregation whose
// budget total is the configuracion singleton.
func (h *Handlers) AdminReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := h.deps.Services.Reports.Build(r.Context(), services.ReportScope{}, reportFilters(r))
		if err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, report)
	}
}

// CoordinatorReport handles GET /api/v1/reportes/coordinador: scoped to
// the caller's own events, budget total summed from those events.
func (h *Handlers) CoordinatorReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		scope := services.ReportScope{CoordinadorID: claims.UserID()}
		report, err := h.deps.Services.Reports.Build(r.Context(), scope, reportFilters(r))
		if err != nil {
			respondDomainError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, report)
	}
}

// AdminReportExport handles GET /api/v1/reportes/export.
func (h *Handlers) AdminReportExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := h.deps.Services.Reports.Build(r.Context(), services.ReportScope{}, reportFilters(r))
		if err != nil {
			respondDomainError(w, err)
			return
		}

		h.writeWorkbook(w, report, "Reporte General", "Reporte_General.xlsx")
	}
}

// CoordinatorReportExport handles GET /api/v1/reportes/coordinador/export.
func (h *Handlers) CoordinatorReportExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())

		scope := services.ReportScope{CoordinadorID: claims.UserID()}
		report, err := h.deps.Services.Reports.Build(r.Context(), scope, reportFilters(r))
		if err != nil {
			respondDomainError(w, err)
			return
		}

		titulo := fmt.Sprintf("Reporte de %s", claims.Nombre())
		filename := fmt.Sprintf("Reporte_%s.xlsx", claims.Nombre())
		h.writeWorkbook(w, report, titulo, filename)
	}
}

func (h *Handlers) writeWorkbook(w http.ResponseWriter, report *responses.Report, titulo, filename string) {
	data, err := services.ExportReport(report, titulo)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	h.deps.Metrics.ReportExportsTotal.Inc()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}
