package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fundaevento/plataforma/internal/auth"
	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/db/repositories"
	"fundaevento/plataforma/internal/models/dtos/requests"
	"fundaevento/plataforma/internal/models/dtos/responses"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// EventService orchestrates event CRUD, ownership checks, and the
// composition of client-facing event views.
type EventService struct {
	events        *repositories.EventRepository
	registrations *repositories.RegistrationRepository
	categories    *repositories.CategoryRepository
}

func NewEventService(
	events *repositories.EventRepository,
	registrations *repositories.RegistrationRepository,
	categories *repositories.CategoryRepository,
) *EventService {
	return &EventService{events: events, registrations: registrations, categories: categories}
}

// ListFilters narrows the event listing. Estado filters on the computed
// effective status, so it is applied client-side of the store query.
type ListFilters struct {
	Estado    string
	Categoria string
	Periodo   int
	Search    string
}

// List returns the events visible to the caller, each with its effective
// status, the live ledger count, and the caller's capability set.
func (s *EventService) List(ctx context.Context, claims auth.UserClaims, f ListFilters) ([]responses.EventView, error) {
	events, err := s.events.List(ctx, repositories.EventFilters{
		Categoria: f.Categoria,
		Periodo:   f.Periodo,
		Search:    f.Search,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(events))
	for i := range events {
		ids[i] = events[i].ID
	}
	counts, err := s.registrations.CountActiveByEvent(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]responses.EventView, 0, len(events))
	for i := range events {
		view := s.compose(&events[i], counts[events[i].ID], claims, now)
		if f.Estado != "" && string(view.Estado) != f.Estado {
			continue
		}
		views = append(views, view)
	}

	return views, nil
}

// Get returns one event view.
func (s *EventService) Get(ctx context.Context, claims auth.UserClaims, id string) (*responses.EventView, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.registrations.CountActive(ctx, id)
	if err != nil {
		return nil, err
	}

	view := s.compose(event, count, claims, time.Now())
	return &view, nil
}

// Calendar groups a month's events by date.
func (s *EventService) Calendar(ctx context.Context, claims auth.UserClaims, year int, month time.Month) ([]responses.CalendarDay, error) {
	views, err := s.List(ctx, claims, ListFilters{Periodo: year})
	if err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%04d-%02d", year, int(month))
	byDay := make(map[string][]responses.EventView)
	var order []string
	for _, v := range views {
		if !strings.HasPrefix(v.Fecha, prefix) {
			continue
		}
		if _, seen := byDay[v.Fecha]; !seen {
			order = append(order, v.Fecha)
		}
		byDay[v.Fecha] = append(byDay[v.Fecha], v)
	}

	days := make([]responses.CalendarDay, 0, len(order))
	for _, fecha := range order {
		days = append(days, responses.CalendarDay{Fecha: fecha, Eventos: byDay[fecha]})
	}
	return days, nil
}

// Create validates and persists a new event. When the creator is a
// Coordinador the event is owned by them; Admin-created events have no
// owner. A free-typed category is persisted on the fly.
func (s *EventService) Create(ctx context.Context, claims auth.UserClaims, req requests.SaveEventRequest) (*gormModels.Event, error) {
	event, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	switch claims.Role() {
	case constants.RoleAdmin:
		// No owner: fleet-wide event.
	case constants.RoleCoordinador:
		id := claims.UserID()
		event.CoordinadorID = &id
	default:
		return nil, ErrForbidden
	}

	if err := s.categories.Ensure(ctx, event.Categoria); err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// Update edits an event's fields. Ownership is enforced here in the
// service, not only by route wiring: a Coordinador may touch only events
// whose coordinador_id is their own.
func (s *EventService) Update(ctx context.Context, claims auth.UserClaims, id string, req requests.SaveEventRequest) (*gormModels.Event, error) {
	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageEvent(claims.Role(), claims.UserID(), existing) {
		return nil, ErrForbidden
	}

	event, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	event.ID = existing.ID

	if err := s.categories.Ensure(ctx, event.Categoria); err != nil {
		return nil, err
	}
	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	return s.events.GetByID(ctx, id)
}

// SetStatus sets or clears the manual status override.
func (s *EventService) SetStatus(ctx context.Context, claims auth.UserClaims, id string, estado *string) error {
	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanManageEvent(claims.Role(), claims.UserID(), existing) {
		return ErrForbidden
	}

	if estado == nil || *estado == "" {
		return s.events.SetManualStatus(ctx, id, nil)
	}

	status := constants.EventStatus(*estado)
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *estado)
	}
	return s.events.SetManualStatus(ctx, id, &status)
}

// Delete removes an event. Same ownership rule as Update.
func (s *EventService) Delete(ctx context.Context, claims auth.UserClaims, id string) error {
	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanManageEvent(claims.Role(), claims.UserID(), existing) {
		return ErrForbidden
	}

	return s.events.Delete(ctx, id)
}

func (s *EventService) validate(req requests.SaveEventRequest) (*gormModels.Event, error) {
	req.Titulo = strings.TrimSpace(req.Titulo)
	req.Categoria = strings.TrimSpace(req.Categoria)

	if req.Titulo == "" {
		return nil, fmt.Errorf("titulo is required")
	}
	if req.Categoria == "" {
		return nil, fmt.Errorf("categoria is required")
	}
	if req.CupoMaximo <= 0 {
		return nil, fmt.Errorf("cupo_maximo must be positive")
	}
	if req.PresupuestoMax < 0 || req.PresupuestoActual < 0 {
		return nil, fmt.Errorf("presupuesto cannot be negative")
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha must be YYYY-MM-DD: %w", err)
	}

	return &gormModels.Event{
		Titulo:            req.Titulo,
		Descripcion:       req.Descripcion,
		Fecha:             fecha,
		Hora:              req.Hora,
		Ubicacion:         req.Ubicacion,
		Categoria:         req.Categoria,
		CupoMaximo:        req.CupoMaximo,
		PresupuestoMax:    req.PresupuestoMax,
		PresupuestoActual: req.PresupuestoActual,
	}, nil
}

// compose builds the client view for one event. Budget figures are
// stripped for roles that may not see them.
func (s *EventService) compose(event *gormModels.Event, inscritos int, claims auth.UserClaims, now time.Time) responses.EventView {
	caps := auth.CapabilitiesFor(claims.Role(), claims.UserID(), event)

	view := responses.EventView{
		ID:          event.ID,
		Titulo:      event.Titulo,
		Descripcion: event.Descripcion,
		Fecha:       event.Fecha.Format("2006-01-02"),
		Hora:        event.Hora,
		Ubicacion:   event.Ubicacion,
		Categoria:   event.Categoria,
		CupoMaximo:  event.CupoMaximo,
		Inscritos:   inscritos,
		Estado:      EffectiveStatus(event, now),
		Capabilities: responses.EventCapabilities{
			CanEdit:         caps.CanEdit,
			CanDelete:       caps.CanDelete,
			CanChangeStatus: caps.CanChangeStatus,
			CanRegister:     caps.CanRegister,
			CanViewBudget:   caps.CanViewBudget,
		},
	}

	if caps.CanViewBudget {
		max := event.PresupuestoMax
		actual := event.PresupuestoActual
		view.PresupuestoMax = &max
		view.PresupuestoActual = &actual
		view.CoordinadorID = event.CoordinadorID
	}

	return view
}
