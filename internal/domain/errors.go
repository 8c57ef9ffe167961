package domain

import "errors"

// Storage-level outcomes repositories translate database semantics into.
// Services map these onto their own caller-facing errors.
var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
	ErrConflict  = errors.New("conflicting update")
)
