package model

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/implicit/als"
	"github.com/katalvlaran/implicit/factor"
	"github.com/katalvlaran/implicit/sparse"
)

// Model is the explicit state of one WRMF training run: the immutable
// interaction matrix, the options fixed at construction, and the user
// and item factor matrices the solver overwrites row by row. No
// entity is created or destroyed during optimization.
type Model struct {
	data *sparse.Bool
	opts als.Options
	w    *factor.Dense // user factors, data.Rows() × NumFactors
	h    *factor.Dense // item factors, data.Cols() × NumFactors
}

// New validates opts, allocates the factor matrices and draws their
// Gaussian initialization (InitMean/InitStdDev). rng may be nil for a
// non-reproducible run; pass a seeded *rand.Rand otherwise. W is
// drawn before H from the same stream.
//
// Errors: ErrNilData, als.ErrBadConfig.
// Complexity: O((U+I)·F).
func New(data *sparse.Bool, opts als.Options, rng *rand.Rand) (*Model, error) {
	if data == nil {
		return nil, ErrNilData
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	w, err := factor.NewNormal(data.Rows(), opts.NumFactors, opts.InitMean, opts.InitStdDev, rng)
	if err != nil {
		return nil, fmt.Errorf("New: user factors: %w", err)
	}
	h, err := factor.NewNormal(data.Cols(), opts.NumFactors, opts.InitMean, opts.InitStdDev, rng)
	if err != nil {
		return nil, fmt.Errorf("New: item factors: %w", err)
	}

	return &Model{data: data, opts: opts, w: w, h: h}, nil
}

// Iterate advances the model by exactly one training epoch: user
// factors against fixed item factors, then item factors against the
// refreshed user factors. Deterministic: repeating it from the same
// state produces the same next state.
func (m *Model) Iterate() error {
	return als.Iterate(m.data, m.data.Transposed(), m.w, m.h, m.opts)
}

// Train runs NumIter epochs. Cancellation is honored between epochs
// only — a started epoch always runs to completion, matching the
// core's no-mid-row-cancellation contract. A nil ctx behaves like
// context.Background().
func (m *Model) Train(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	for it := 0; it < m.opts.NumIter; it++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Train: epoch %d: %w", it, err)
		}
		if err := m.Iterate(); err != nil {
			return fmt.Errorf("Train: epoch %d: %w", it, err)
		}
	}

	return nil
}

// ComputeFit forwards the core's sentinel: fit reporting is
// unsupported and the result is always als.FitUnavailable.
func (m *Model) ComputeFit() float64 { return als.ComputeFit() }

// Predict returns the preference score of item i for user u — the dot
// product of their latent vectors.
//
// Errors: ErrUnknownUser, ErrUnknownItem.
// Complexity: O(F).
func (m *Model) Predict(u, i int) (float64, error) {
	wu, err := m.w.Row(u)
	if err != nil {
		return 0, fmt.Errorf("Predict(%d,%d): %w", u, i, ErrUnknownUser)
	}
	hi, err := m.h.Row(i)
	if err != nil {
		return 0, fmt.Errorf("Predict(%d,%d): %w", u, i, ErrUnknownItem)
	}

	return dot(wu, hi), nil
}

// UserFactors exposes the user factor matrix for downstream scoring.
// The matrix is live model state; treat it as read-only.
func (m *Model) UserFactors() *factor.Dense { return m.w }

// ItemFactors exposes the item factor matrix for downstream scoring.
// The matrix is live model state; treat it as read-only.
func (m *Model) ItemFactors() *factor.Dense { return m.h }

// Options returns the immutable configuration of this run.
func (m *Model) Options() als.Options { return m.opts }

// dot computes the inner product of two equally sized vectors.
func dot(a, b []float64) float64 {
	var s float64
	for k := range a {
		s += a[k] * b[k]
	}

	return s
}
