package entities

import "errors"

// Domain errors
var (
	ErrInvalidAreaCode = errors.New("area code must be exactly 3 digits")
	ErrInvalidAgent    = errors.New("agent name is required")
)
