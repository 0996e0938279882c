package models

import "errors"

// Sentinel errors shared across services and handlers. Handlers map these
// to HTTP status codes with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailRequired      = errors.New("email address is required")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrInvalidReference   = errors.New("referenced tag or ingredient not found")
	ErrInvalidImage       = errors.New("uploaded file is not a valid image")
	ErrValidation         = errors.New("validation failed")
)
