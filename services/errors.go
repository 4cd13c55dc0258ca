package services

import "errors"

// Service errors. Controllers map these to HTTP statuses; anything
// else is treated as an internal error and never echoed to clients.
var (
	ErrValidation         = errors.New("missing required field")
	ErrConflict           = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDelivery           = errors.New("failed to send notification")
)
