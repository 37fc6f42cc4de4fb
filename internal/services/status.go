package services

import (
	"time"

	"fundaevento/plataforma/internal/constants"
	gormModels "fundaevento/plataforma/internal/models/gorm"
)

// EffectiveStatus derives an event's display status for a given instant.
//
// A manual override always wins verbatim. Otherwise the comparison is
// date-only: both the event date and "today" are truncated to midnight,
// past dates are Completado and everything else Activo. Cancelado is
// never derived, only ever set manually.
//
// Every view (listing, calendar, dashboards, reports) calls this same
// function so no two screens can disagree on an event's state.
func EffectiveStatus(event *gormModels.Event, today time.Time) constants.EventStatus {
	if event.EstadoManual != nil && *event.EstadoManual != "" {
		return *event.EstadoManual
	}
	return derivedStatus(event.Fecha, today)
}

// EffectiveStatusFrom is the same derivation for callers that hold the
// raw fields instead of a model (the sqlx report rows).
func EffectiveStatusFrom(estadoManual *constants.EventStatus, fecha, today time.Time) constants.EventStatus {
	if estadoManual != nil && *estadoManual != "" {
		return *estadoManual
	}
	return derivedStatus(fecha, today)
}

func derivedStatus(fecha, today time.Time) constants.EventStatus {
	if truncateToDay(fecha).Before(truncateToDay(today)) {
		return constants.EventCompletado
	}
	return constants.EventActivo
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
