package store

import "errors"

var (
	// ErrNotFound is returned when a mutation targets a habit or note
	// id absent from the user's collection, or a session token that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned when creation input is rejected
	// (empty title, unknown category).
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail is returned by signup when the email is
	// already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned by login when no credential
	// record matches the email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
