package pinchcam

import "errors"

var (
	// ErrNotFound is returned when a pointer lookup misses. It is never fatal.
	ErrNotFound = errors.New("pinchcam: pointer not found")

	// ErrDuplicateIdentity is returned when a pointer-down arrives for an id
	// that is already active. It indicates an event-sequencing bug upstream.
	ErrDuplicateIdentity = errors.New("pinchcam: duplicate pointer identity")

	// ErrDegenerateGeometry is returned when a computation would produce a
	// non-finite result (zero-size viewport, invalid depth, parallel ray).
	// The camera is never updated with such a result.
	ErrDegenerateGeometry = errors.New("pinchcam: degenerate geometry")

	// ErrInvalidCoordinate is returned for NaN or infinite input coordinates.
	ErrInvalidCoordinate = errors.New("pinchcam: invalid coordinate")
)
