package services

import "errors"

var (
	// ErrAlreadyRegistered: an Inscrito row already exists for the pair.
	ErrAlreadyRegistered = errors.New("already registered")
	// ErrEventNotOpen: the event's effective status is not Activo.
	ErrEventNotOpen = errors.New("event not open for registration")
	// ErrEventFull: capacity enforcement is on and the event is full.
	ErrEventFull = errors.New("event is at capacity")
	// ErrNotRegistered: cancel with no active registration.
	ErrNotRegistered = errors.New("no active registration")
	// ErrForbidden: the role lacks the capability for the action.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidStatus: a manual override outside the closed status set.
	ErrInvalidStatus = errors.New("invalid event status")
	// ErrUnknownRole: a profile row carries a role outside the closed set.
	ErrUnknownRole = errors.New("unknown role")
	// ErrAccountInactive: the profile exists but the account is disabled.
	ErrAccountInactive = errors.New("account inactive")
)
