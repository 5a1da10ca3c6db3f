package navigator

import "errors"

var (
	// ErrInvalidInput marks client-side mistakes in a request.
	ErrInvalidInput = errors.New("navigator: invalid input")

	// ErrNotFound marks a building, floor or room that does not exist.
	ErrNotFound = errors.New("navigator: not found")
)
