package repositories

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Callers
// map it to a user-visible message and trigger a re-fetch; they never
// guess-update local state.
var ErrNotFound = errors.New("record not found")
