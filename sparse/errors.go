// Package sparse: sentinel error set.
// All constructors and accessors return these sentinels; tests check
// them via errors.Is. No function in this package panics on
// user-triggered error conditions.

package sparse

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")
)
