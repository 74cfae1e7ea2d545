// Package als: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// als package. All functions MUST return these sentinels and tests
// MUST check them via errors.Is. No function panics on user-triggered
// error conditions.

package als

import "errors"

var (
	// ErrBadConfig is returned when Options fail validation: NumFactors
	// or NumIter non-positive, CPos or Reg negative, Workers < 1.
	// Rejected at construction, never inside the solve loop.
	ErrBadConfig = errors.New("als: invalid options")

	// ErrDimensionMismatch indicates that the interaction view and the
	// factor matrices disagree on row/column counts. Checked once per
	// Optimize call; a programmer error, not recoverable.
	ErrDimensionMismatch = errors.New("als: dimension mismatch")

	// ErrSingularSystem is returned when a per-row system is not
	// positive-definite — only possible with Reg = 0 and an empty row.
	// Callers guarantee Reg > 0 to rule this out.
	ErrSingularSystem = errors.New("als: singular system")

	// ErrNilArgument indicates a nil interaction view or factor matrix.
	ErrNilArgument = errors.New("als: nil argument")
)
