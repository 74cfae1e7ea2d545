package als

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/implicit/factor"
)

// validateShapes checks once, before any solve, that the interaction
// view and the factor matrices agree:
//
//	data.Rows() == w.Rows()   (one interaction row per optimized entity)
//	data.Cols() == h.Rows()   (one interaction column per fixed entity)
//	w.Cols() == h.Cols() == f (shared latent dimensionality)
//
// Complexity: O(1).
func validateShapes(data InteractionView, w, h *factor.Dense, f int) error {
	if data == nil || w == nil || h == nil {
		return ErrNilArgument
	}
	if w.Cols() != f || h.Cols() != f {
		return fmt.Errorf("factors %d/%d want %d: %w", w.Cols(), h.Cols(), f, ErrDimensionMismatch)
	}
	if data.Rows() != w.Rows() {
		return fmt.Errorf("data rows %d vs W rows %d: %w", data.Rows(), w.Rows(), ErrDimensionMismatch)
	}
	if data.Cols() != h.Rows() {
		return fmt.Errorf("data cols %d vs H rows %d: %w", data.Cols(), h.Rows(), ErrDimensionMismatch)
	}

	return nil
}

// Optimize re-solves every row of w against the fixed factor matrix h
// for one side of the model: call it with the interaction matrix to
// update user factors, and with the transposed view (w and h swapped)
// to update item factors.
//
// The Gram matrix G = hᵀh is computed exactly once, before any row
// starts. Then, for every row u of w, the observed column set is
// fetched, the corrected system (G + C_u + λI) x = b_u is built and
// solved, and x overwrites row u. h is never written.
//
// With opts.Workers > 1 the row loop is split into disjoint
// contiguous ranges, one goroutine each; rows only read h and write
// their own row of w, so no locking is needed and the result is
// identical to the serial pass. Optimize returns only after all rows
// are done.
//
// Errors: ErrBadConfig, ErrNilArgument, ErrDimensionMismatch,
// ErrSingularSystem (λ=0 with an empty row).
// Complexity: O(F²·N) for G plus O(F²·|S_u| + F³) per row.
func Optimize(data InteractionView, w, h *factor.Dense, opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("Optimize: %w", err)
	}
	if err := validateShapes(data, w, h, opts.NumFactors); err != nil {
		return fmt.Errorf("Optimize: %w", err)
	}

	// One-time barrier: G must be complete before any row solve.
	g, err := gram(h)
	if err != nil {
		return fmt.Errorf("Optimize: %w", err)
	}

	rows := w.Rows()
	workers := opts.Workers
	if workers > rows {
		workers = rows
	}
	if workers == 1 {
		return solveRows(data, w, h, opts, g, 0, rows)
	}

	// Disjoint contiguous row ranges; each worker owns its slice of w.
	var wg sync.WaitGroup
	errs := make([]error, workers)
	chunk := (rows + workers - 1) / workers
	for p := 0; p < workers; p++ {
		lo, hi := p*chunk, (p+1)*chunk
		if hi > rows {
			hi = rows
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(p, lo, hi int) {
			defer wg.Done()
			errs[p] = solveRows(data, w, h, opts, g, lo, hi)
		}(p, lo, hi)
	}
	wg.Wait()
	for _, werr := range errs {
		if werr != nil {
			return werr
		}
	}

	return nil
}

// solveRows runs the per-row build-and-solve loop for rows [lo, hi).
// m and bu are per-range scratch buffers, so concurrent ranges never
// share mutable state beyond their own rows of w.
func solveRows(data InteractionView, w, h *factor.Dense, opts Options, g []float64, lo, hi int) error {
	f := opts.NumFactors
	m := make([]float64, f*f)
	bu := make([]float64, f)

	var a int
	for u := lo; u < hi; u++ {
		s, err := data.RowEntries(u)
		if err != nil {
			return fmt.Errorf("Optimize: RowEntries(%d): %w", u, err)
		}

		// M = G + C_u + λI, b_u per the confidence weighting.
		copy(m, g)
		if err = addCorrection(h, s, opts.CPos, m, bu); err != nil {
			return fmt.Errorf("Optimize: row %d: %w", u, err)
		}
		for a = 0; a < f; a++ {
			m[a*f+a] += opts.Reg
		}

		x, err := solveSPD(m, bu, f)
		if err != nil {
			return fmt.Errorf("Optimize: row %d: %w", u, err)
		}
		if err = w.SetRow(u, x); err != nil {
			return fmt.Errorf("Optimize: row %d: %w", u, err)
		}
	}

	return nil
}

// Iterate advances the model by exactly one training epoch: first the
// user factors w are re-solved against the fixed item factors h, then
// the item factors are re-solved against the *freshly updated* w.
//
// The ordering is load-bearing — the item pass must see the refreshed
// user factors — so the two Optimize calls are strictly sequential
// and form a hard barrier: every row of the first pass completes
// before the second pass computes its Gram matrix.
//
// data is the interaction matrix oriented users×items; transposed is
// the same matrix oriented items×users. There is no randomness inside
// this core, so repeating Iterate from the same state yields the same
// next state.
func Iterate(data, transposed InteractionView, w, h *factor.Dense, opts Options) error {
	// User pass: refresh W while H stays fixed.
	if err := Optimize(data, w, h, opts); err != nil {
		return fmt.Errorf("Iterate: user pass: %w", err)
	}
	// Item pass: strictly after the user pass, against the new W.
	if err := Optimize(transposed, h, w, opts); err != nil {
		return fmt.Errorf("Iterate: item pass: %w", err)
	}

	return nil
}

// ComputeFit reports the training fit of the model. Fit computation
// is intentionally unsupported in this core: the result is always
// FitUnavailable, regardless of model state, and must never be read
// as an approximate loss.
func ComputeFit() float64 {
	return FitUnavailable
}
