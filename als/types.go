// Package als defines the options and boundary contracts of the
// WRMF solver core.
package als

import "fmt"

// FitUnavailable is the sentinel returned by ComputeFit. Fit would be
// a sum of squared residuals and can never be negative, so -1 is
// unambiguously out of range; callers must treat it as "no fit
// metric", never as a numeric quality score.
const FitUnavailable = -1.0

// InteractionView is the read contract the solver consumes from the
// sparse interaction matrix, in one of its two orientations: rows
// correspond to the side being optimized, columns to the fixed side.
//
// RowEntries returns the column indices observed in the given row —
// finite, duplicate-free, order irrelevant. The solver never mutates
// the returned slice.
type InteractionView interface {
	Rows() int
	Cols() int
	RowEntries(row int) ([]int, error)
}

// Options configures a WRMF training run. The value is immutable by
// convention: construct it once before training and never mutate it
// mid-run, so row solves can be parallelized without races.
//
// Fields:
//   - NumFactors — latent dimensionality F of both factor matrices.
//   - CPos       — confidence weight applied to observed entries,
//     relative to the uniform baseline on all entries. Must be ≥ 0.
//   - Reg        — ridge penalty λ added to the diagonal of every
//     per-row system. Must be > 0 whenever any row may be empty,
//     otherwise the system is singular.
//   - NumIter    — number of training epochs driven by the caller.
//   - InitMean, InitStdDev — Gaussian parameters for factor
//     initialization (used at construction time, outside this core).
//   - Workers    — goroutines for the row loop; 1 means serial.
//     Parallel results are identical to serial ones.
//
// Example:
//
//	opts := als.DefaultOptions()
//	opts.NumFactors = 32
//	opts.CPos = 10
//	if err := opts.Validate(); err != nil {
//	  // handle ErrBadConfig before any training starts
//	}
type Options struct {
	NumFactors int
	CPos       float64
	Reg        float64
	NumIter    int
	InitMean   float64
	InitStdDev float64
	Workers    int
}

// DefaultOptions returns the recommended starting configuration:
// 10 factors, unit positive confidence, λ=0.015, 15 epochs,
// zero-mean 0.1-stddev initialization, serial row loop.
func DefaultOptions() Options {
	return Options{
		NumFactors: 10,
		CPos:       1,
		Reg:        0.015,
		NumIter:    15,
		InitMean:   0,
		InitStdDev: 0.1,
		Workers:    1,
	}
}

// Validate checks the configuration invariants and returns
// ErrBadConfig (wrapped with the offending field) on violation.
// Complexity: O(1).
func (o Options) Validate() error {
	if o.NumFactors <= 0 {
		return fmt.Errorf("NumFactors=%d: %w", o.NumFactors, ErrBadConfig)
	}
	if o.CPos < 0 {
		return fmt.Errorf("CPos=%g: %w", o.CPos, ErrBadConfig)
	}
	if o.Reg < 0 {
		return fmt.Errorf("Reg=%g: %w", o.Reg, ErrBadConfig)
	}
	if o.NumIter <= 0 {
		return fmt.Errorf("NumIter=%d: %w", o.NumIter, ErrBadConfig)
	}
	if o.Workers < 1 {
		return fmt.Errorf("Workers=%d: %w", o.Workers, ErrBadConfig)
	}

	return nil
}
