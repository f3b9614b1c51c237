package service

import "errors"

// Sentinel errors the handler layer maps onto HTTP status codes.
// Services wrap these with entity context via fmt.Errorf("...: %w", ...).
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation failed")
)
