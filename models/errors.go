// errors.go - Domain errors shared by every layer

package models

import "errors"

// Domain errors shared by the store, services and handlers.
var (
	ErrValidation         = errors.New("validation failed")        // Missing required field
	ErrNotFound           = errors.New("requested item not found") // No record with that id or email
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("action forbidden")
	ErrStore              = errors.New("store failure") // Database error, wrapped by the store
)
