package routes

import (
	"github.com/go-chi/chi/v5"

	"fundaevento/plataforma/internal/api"
	"fundaevento/plataforma/internal/middleware"
)

// RegisterAPIRoutes mounts /api/v1. Session creation is public but rate
// limited; everything else requires a resolved session, with write
// surfaces gated by role middleware.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, h *api.Handlers) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitMiddleware)
			r.Post("/auth/session", h.CreateSession())
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(deps.Services.Session))

			r.Delete("/auth/session", h.DeleteSession())
			r.Get("/me", h.Me())
			r.Get("/dashboard", h.Dashboard())

			r.Get("/eventos", h.ListEvents())
			r.Get("/eventos/calendario", h.Calendar())
			r.Get("/eventos/{id}", h.GetEvent())
			r.Get("/categorias", h.ListCategories())

			r.Group(func(r chi.Router) {
				r.Use(middleware.IsParticipanteMiddleware())
				r.Post("/eventos/{id}/inscripcion", h.Register())
				r.Delete("/eventos/{id}/inscripcion", h.Unregister())
				r.Get("/mis-eventos", h.MyEvents())
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.IsCoordinadorMiddleware())
				r.Post("/eventos", h.CreateEvent())
				r.Put("/eventos/{id}", h.UpdateEvent())
				r.Put("/eventos/{id}/estado", h.SetEventStatus())
				r.Delete("/eventos/{id}", h.DeleteEvent())
				r.Get("/reportes/coordinador", h.CoordinatorReport())
				r.Get("/reportes/coordinador/export", h.CoordinatorReportExport())
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.IsAdminMiddleware())
				r.Get("/usuarios", h.ListUsers())
				r.Post("/usuarios", h.CreateUser())
				r.Put("/usuarios/{id}/rol", h.SetUserRole())
				r.Put("/usuarios/{id}/estado", h.SetUserStatus())
				r.Get("/configuracion/presupuesto", h.GetGeneralBudget())
				r.Put("/configuracion/presupuesto", h.SetGeneralBudget())
				r.Post("/categorias", h.CreateCategory())
				r.Get("/reportes", h.AdminReport())
				r.Get("/reportes/export", h.AdminReportExport())
			})
		})
	})
}
