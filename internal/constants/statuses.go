package constants

import (
	"database/sql/driver"
	"fmt"
)

// EventStatus is the display status of an event. Activo and Completado can
// be derived from the event date; Cancelado is only ever reached through a
// manual override.
type EventStatus string

const (
	EventActivo     EventStatus = "Activo"
	EventCompletado EventStatus = "Completado"
	EventCancelado  EventStatus = "Cancelado"
)

func (s EventStatus) String() string { return string(s) }

func (s EventStatus) Valid() bool {
	switch s {
	case EventActivo, EventCompletado, EventCancelado:
		return true
	}
	return false
}

func (s *EventStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = EventStatus(v)
	case []byte:
		*s = EventStatus(v)
	default:
		return fmt.Errorf("EventStatus: cannot scan type %T", src)
	}
	return nil
}

func (s EventStatus) Value() (driver.Value, error) { return string(s), nil }

// RegistrationStatus mirrors the "estado" column on the participantes
// table. Rows are never deleted; a withdrawal flips Inscrito to Cancelado.
type RegistrationStatus string

const (
	RegistrationInscrito  RegistrationStatus = "Inscrito"
	RegistrationCancelado RegistrationStatus = "Cancelado"
)

func (s RegistrationStatus) String() string { return string(s) }

func (s *RegistrationStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = RegistrationStatus(v)
	case []byte:
		*s = RegistrationStatus(v)
	default:
		return fmt.Errorf("RegistrationStatus: cannot scan type %T", src)
	}
	return nil
}

func (s RegistrationStatus) Value() (driver.Value, error) { return string(s), nil }

// AccountStatus mirrors the "estado" column on the usuarios table.
type AccountStatus string

const (
	AccountActivo   AccountStatus = "Activo"
	AccountInactivo AccountStatus = "Inactivo"
)

func (s AccountStatus) String() string { return string(s) }

func (s *AccountStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = AccountStatus(v)
	case []byte:
		*s = AccountStatus(v)
	default:
		return fmt.Errorf("AccountStatus: cannot scan type %T", src)
	}
	return nil
}

func (s AccountStatus) Value() (driver.Value, error) { return string(s), nil }
