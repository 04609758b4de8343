package repository

import "errors"

var (
	// ErrNotFound is returned when no document has the requested key.
	ErrNotFound = errors.New("not found")
	// ErrNoMatch is returned by conditional writes whose combined filter
	// matched nothing. It does not say which condition failed.
	ErrNoMatch = errors.New("no document matched")
)
