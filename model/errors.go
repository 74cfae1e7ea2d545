// Package model: sentinel error set.

package model

import "errors"

var (
	// ErrNilData indicates that a nil interaction matrix was passed to New.
	ErrNilData = errors.New("model: interaction data is nil")

	// ErrUnknownUser indicates a user index outside the trained range.
	ErrUnknownUser = errors.New("model: unknown user index")

	// ErrUnknownItem indicates an item index outside the trained range.
	ErrUnknownItem = errors.New("model: unknown item index")

	// ErrInvalidTopN indicates a non-positive recommendation count.
	ErrInvalidTopN = errors.New("model: top-n count must be > 0")
)
