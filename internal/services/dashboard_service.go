package services

import (
	"context"
	"fmt"

	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/db/repositories"
	"fundaevento/plataforma/internal/models/dtos/responses"
)

// DashboardService builds the role-dispatched metric cards for the
// landing screen. The switch over the Role variant is exhaustive; there
// is no fall-through view.
type DashboardService struct {
	reports       *ReportService
	registrations *RegistrationService
	users         *repositories.UserRepository
	budget        *repositories.BudgetConfigRepository
}

func NewDashboardService(
	reports *ReportService,
	registrations *RegistrationService,
	users *repositories.UserRepository,
	budget *repositories.BudgetConfigRepository,
) *DashboardService {
	return &DashboardService{
		reports:       reports,
		registrations: registrations,
		users:         users,
		budget:        budget,
	}
}

func (s *DashboardService) Build(ctx context.Context, claims auth.UserClaims) (*responses.DashboardView, error) {
	switch claims.Role() {
	case constants.RoleAdmin:
		return s.buildAdmin(ctx)
	case constants.RoleCoordinador:
		return s.buildCoordinador(ctx, claims.UserID())
	case constants.RoleParticipante:
		return s.buildParticipante(ctx, claims.UserID())
	default:
		return nil, ErrUnknownRole
	}
}

func (s *DashboardService) buildAdmin(ctx context.Context) (*responses.DashboardView, error) {
	report, err := s.reports.Build(ctx, ReportScope{}, ReportFilters{})
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := s.budget.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.DashboardView{
		Rol: constants.RoleAdmin,
		Admin: &responses.AdminDashboard{
			TotalEventos:       report.TotalEvents,
			EventosActivos:     report.ActiveEvents,
			EventosCompletados: report.CompletedEvents,
			TotalParticipantes: report.TotalParticipants,
			TotalUsuarios:      int(totalUsers),
			PresupuestoGeneral: cfg.PresupuestoGeneral,
			FondosEjecutados:   report.BudgetSpent,
		},
	}, nil
}

func (s *DashboardService) buildCoordinador(ctx context.Context, userID string) (*responses.DashboardView, error) {
	report, err := s.reports.Build(ctx, ReportScope{CoordinadorID: userID}, ReportFilters{})
	if err != nil {
		return nil, err
	}

	return &responses.DashboardView{
		Rol: constants.RoleCoordinador,
		Coordinador: &responses.CoordinadorDashboard{
			MisEventos:         report.TotalEvents,
			EventosActivos:     report.ActiveEvents,
			EventosCompletados: report.CompletedEvents,
			TotalParticipantes: report.TotalParticipants,
			PresupuestoTotal:   report.BudgetTotal,
			FondosEjecutados:   report.BudgetSpent,
		},
	}, nil
}

func (s *DashboardService) buildParticipante(ctx context.Context, userID string) (*responses.DashboardView, error) {
	views, err := s.registrations.MyEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("participant dashboard: %w", err)
	}

	dash := &responses.ParticipanteDashboard{}
	for _, v := range views {
		if v.Inscrito != constants.RegistrationInscrito {
			continue
		}
		dash.EventosInscritos++
		switch v.Estado {
		case constants.EventActivo:
			dash.EventosActivos++
		case constants.EventCompletado:
			dash.EventosCompletados++
		}
	}

	return &responses.DashboardView{
		Rol:          constants.RoleParticipante,
		Participante: dash,
	}, nil
}
