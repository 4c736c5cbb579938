package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// The API layer maps them to HTTP status codes.
var (
	// ErrIdentityRequired indicates an operation was called without an
	// authenticated identity. API layer should map this to HTTP 401.
	ErrIdentityRequired = errors.New("authenticated identity is required")
)
