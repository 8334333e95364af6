// Package common defines shared constants and sentinel errors used across
// TaskKeep components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors. ErrorNotFound is deliberately returned both
	// when a task does not exist and when it belongs to another user, so the
	// distinction never leaks past the repository.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorValidation    = errors.New("validation error")
	ErrorAlreadyExists = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
