package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fundaevento/plataforma/internal/constants"
	"fundaevento/plataforma/internal/db/repositories"
	"fundaevento/plataforma/internal/logging"
	"fundaevento/plataforma/internal/models/dtos/responses"
)

// RegistrationService is the enrollment ledger. It owns the
// at-most-one-active-registration invariant and is the only source of
// participant counts; the stored column on eventos is a cache it
// refreshes but never reads.
type RegistrationService struct {
	registrations *repositories.RegistrationRepository
	events        *repositories.EventRepository

	// enforceCapacity blocks registration into full events. Off by
	// default: observed platform behavior treats capacity as advisory and
	// allows overbooking.
	enforceCapacity bool
}

func NewRegistrationService(
	registrations *repositories.RegistrationRepository,
	events *repositories.EventRepository,
	enforceCapacity bool,
) *RegistrationService {
	return &RegistrationService{
		registrations:   registrations,
		events:          events,
		enforceCapacity: enforceCapacity,
	}
}

// Register enrolls a participant into an event.
//
// Fails with ErrAlreadyRegistered when an active row exists, with
// ErrEventNotOpen when the effective status is not Activo, and with
// ErrEventFull only when capacity enforcement is opted in. A previously
// cancelled row is flipped back to Inscrito so the pair never has two
// rows.
func (s *RegistrationService) Register(ctx context.Context, usuarioID, eventoID string) error {
	event, err := s.events.GetByID(ctx, eventoID)
	if err != nil {
		return err
	}

	if EffectiveStatus(event, time.Now()) != constants.EventActivo {
		return ErrEventNotOpen
	}

	existing, err := s.registrations.FindPair(ctx, usuarioID, eventoID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if existing != nil && existing.Estado == constants.RegistrationInscrito {
		return ErrAlreadyRegistered
	}

	if s.enforceCapacity {
		active, err := s.registrations.CountActive(ctx, eventoID)
		if err != nil {
			return err
		}
		if active >= event.CupoMaximo {
			return ErrEventFull
		}
	}

	if existing != nil {
		// Re-enrollment after a cancellation: reuse the row.
		if err := s.registrations.SetStatus(ctx, existing.ID, constants.RegistrationInscrito); err != nil {
			return err
		}
	} else {
		if _, err := s.registrations.Create(ctx, usuarioID, eventoID); err != nil {
			return err
		}
	}

	s.refreshCachedCount(ctx, eventoID)
	return nil
}

// Cancel withdraws a participant. The ledger row is flipped to Cancelado,
// never deleted, so enrollment history survives.
func (s *RegistrationService) Cancel(ctx context.Context, usuarioID, eventoID string) error {
	existing, err := s.registrations.FindPair(ctx, usuarioID, eventoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotRegistered
		}
		return err
	}
	if existing.Estado != constants.RegistrationInscrito {
		return ErrNotRegistered
	}

	if err := s.registrations.SetStatus(ctx, existing.ID, constants.RegistrationCancelado); err != nil {
		return err
	}

	s.refreshCachedCount(ctx, eventoID)
	return nil
}

// CountActive recomputes the live headcount from the ledger.
func (s *RegistrationService) CountActive(ctx context.Context, eventoID string) (int, error) {
	return s.registrations.CountActive(ctx, eventoID)
}

// CountActiveByEvent batches CountActive over a listing.
func (s *RegistrationService) CountActiveByEvent(ctx context.Context, eventoIDs []string) (map[string]int, error) {
	return s.registrations.CountActiveByEvent(ctx, eventoIDs)
}

// MyEvents returns a participant's registrations joined to their events,
// with effective statuses computed for now.
func (s *RegistrationService) MyEvents(ctx context.Context, usuarioID string) ([]responses.MyEventView, error) {
	regs, err := s.registrations.ListByUser(ctx, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("my events: %w", err)
	}

	now := time.Now()
	views := make([]responses.MyEventView, 0, len(regs))
	for _, reg := range regs {
		views = append(views, responses.MyEventView{
			EventoID:  reg.EventoID,
			Titulo:    reg.Evento.Titulo,
			Fecha:     reg.Evento.Fecha.Format("2006-01-02"),
			Ubicacion: reg.Evento.Ubicacion,
			Categoria: reg.Evento.Categoria,
			Estado:    EffectiveStatus(&reg.Evento, now),
			Inscrito:  reg.Estado,
		})
	}

	return views, nil
}

// refreshCachedCount rewrites the stored counter after a ledger write.
// The cache is best effort; failures are logged and ignored because no
// reader trusts the column.
func (s *RegistrationService) refreshCachedCount(ctx context.Context, eventoID string) {
	if err := s.events.RefreshParticipantCount(ctx, eventoID); err != nil {
		logging.Warn("failed to refresh cached participant count",
			"evento_id", eventoID, "error", err.Error())
	}
}
