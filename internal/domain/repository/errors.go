package repository

import "errors"

// Store-level sentinel errors. Services translate these into the
// client-facing taxonomy; any other repository error means the store
// itself failed.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)
