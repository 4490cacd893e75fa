package repository

import "errors"

// ErrNotFound is returned by lookups whose target does not exist. Every
// implementation wraps or returns it directly so callers can test with
// errors.Is regardless of the backing store.
var ErrNotFound = errors.New("not found")
