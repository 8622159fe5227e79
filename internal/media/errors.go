package media

import "errors"

var (
	// ErrNoRoot indicates the media path is unset or missing.
	ErrNoRoot = errors.New("local media path not set or does not exist")

	// ErrNotFound indicates the requested file doesn't exist.
	ErrNotFound = errors.New("file not found")

	// ErrForbidden indicates a path outside the media root.
	ErrForbidden = errors.New("path outside media directory")
)
