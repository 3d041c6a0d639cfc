package domain

import "errors"

// Common domain errors used across the engine.
var (
	// ErrInvalidQuality is returned when a quality rating is not one of
	// again, hard, good or easy. Unknown ratings are a caller programming
	// error and are never mapped to a default grade.
	ErrInvalidQuality = errors.New("invalid quality rating")

	// ErrInvalidState is returned when prior scheduling state read from
	// storage cannot be scheduled (negative interval, negative lapses,
	// non-finite values).
	ErrInvalidState = errors.New("invalid schedule state")
)
