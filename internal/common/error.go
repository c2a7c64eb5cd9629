// Package common defines sentinel errors shared by the repository, service
// and transport layers of the auth API. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound            = errors.New("not found")
	ErrorConstraintViolation = errors.New("constraint violation")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorMissingFields      = errors.New("missing fields")
	ErrorUserExists         = errors.New("user already exists")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorPasswordTooLong    = errors.New("password too long")
)
