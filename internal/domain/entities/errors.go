package entities

import "errors"

// Domain errors
var (
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidRequest = errors.New("invalid request")
)
