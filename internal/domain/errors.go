package domain

import "errors"

// Sentinel errors shared by every layer. Services wrap them with %w and the
// REST boundary maps them onto status codes, so callers test with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
)
