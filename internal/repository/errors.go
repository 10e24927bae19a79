package repository

import "errors"

var (
	// ErrNotFound is returned when a row lookup, update or delete matches nothing.
	ErrNotFound = errors.New("row not found")

	// ErrDuplicateEmail is returned when a subscriber insert violates the
	// unique constraint on email.
	ErrDuplicateEmail = errors.New("subscriber with this email already exists")
)
