package zoom

import (
	"errors"
)

var (
	// ErrInvalidParameter is returned for bad construction arguments.
	// A table must not be used after construction fails with it.
	ErrInvalidParameter = errors.New("invalid zoom parameter")

	// ErrDegenerateScale is returned when a transform receives a scale
	// of zero or less. It indicates a caller bug and is never clamped
	// away silently.
	ErrDegenerateScale = errors.New("degenerate scale")

	// ErrNoRationalFound is returned when no fraction lies within the
	// requested tolerance. Recoverable: callers fall back to the
	// unconstrained floating-point ratio.
	ErrNoRationalFound = errors.New("no rational approximation within tolerance")
)
