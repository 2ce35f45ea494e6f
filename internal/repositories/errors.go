package repositories

import "errors"

// ErrNotFound is returned when a record does not exist. Callers check it
// with errors.Is to distinguish misses from storage failures.
var ErrNotFound = errors.New("not found")
