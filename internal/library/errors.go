package library

import "errors"

var (
	// ErrNotFound indicates the requested entry doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrConstraint indicates a check constraint violation.
	ErrConstraint = errors.New("constraint violation")

	// ErrInvalidCategory indicates a category other than series or movies.
	ErrInvalidCategory = errors.New("invalid category")
)
