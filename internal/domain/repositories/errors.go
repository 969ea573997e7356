package repositories

import "errors"

// ErrNotFound is returned when a lookup, update or delete matches no record
var ErrNotFound = errors.New("record not found")
