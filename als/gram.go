// SPDX-License-Identifier: MIT
// Package als: Gram and per-row correction kernels.
//
// Purpose:
//   - Build the fixed-side Gram matrix G = HᵀH once per optimizer pass.
//   - Build, per optimized row, the confidence-weighted correction C_u
//     and right-hand side b_u from the row's observed column set.
//
// Determinism & Performance:
//   - Fixed loop orders everywhere; results are stable across runs.
//   - Only the upper triangle is accumulated, then mirrored.

package als

import (
	"fmt"

	"github.com/katalvlaran/implicit/factor"
)

// gram computes G = HᵀH as a fresh flat row-major F×F slice.
//
// G captures the contribution of the uniform negative weight assumed
// for every unobserved entry; it is identical for all rows of one
// optimizer pass and must be fully built before any row solve starts.
//
// Implementation:
//   - Stage 1: accumulate the upper triangle over all rows of H.
//   - Stage 2: mirror onto the lower triangle (G is symmetric).
//
// Complexity: O(F²·N) time, O(F²) space, N = h.Rows().
func gram(h *factor.Dense) ([]float64, error) {
	f := h.Cols()
	g := make([]float64, f*f)

	var i, a, b int
	var va float64
	for i = 0; i < h.Rows(); i++ {
		row, err := h.Row(i)
		if err != nil {
			return nil, fmt.Errorf("gram: Row(%d): %w", i, err)
		}
		for a = 0; a < f; a++ {
			va = row[a]
			if va == 0 {
				continue // skip zero for performance
			}
			for b = a; b < f; b++ {
				g[a*f+b] += va * row[b]
			}
		}
	}
	// Mirror the accumulated upper triangle.
	for a = 0; a < f; a++ {
		for b = a + 1; b < f; b++ {
			g[b*f+a] = g[a*f+b]
		}
	}

	return g, nil
}

// addCorrection accumulates the correction term of one optimized row
// into m and fills bu with the row's right-hand side:
//
//	m[a,b] += c_pos · Σ_{i∈s} H[i,a]·H[i,b]
//	bu[a]   = (1 + c_pos) · Σ_{i∈s} H[i,a]
//
// m is a flat F×F system seeded with G beforehand; bu is zeroed here.
// An empty s leaves m untouched and bu all-zero, which (with λ>0)
// solves to the null latent vector for cold-start rows.
//
// The weighting above is deliberate: the correction uses c_pos (not
// c_pos−1) and the right-hand side uses 1+c_pos (not c_pos). Do not
// "fix" this to the literature's alpha-weighting.
//
// Complexity: O(F²·|s|) time, O(1) extra space.
func addCorrection(h *factor.Dense, s []int, cPos float64, m, bu []float64) error {
	f := h.Cols()
	var a, b int
	for a = 0; a < f; a++ {
		bu[a] = 0
	}

	var va float64
	for _, i := range s {
		row, err := h.Row(i)
		if err != nil {
			return fmt.Errorf("addCorrection: Row(%d): %w", i, err)
		}
		for a = 0; a < f; a++ {
			va = row[a]
			bu[a] += (1 + cPos) * va
			if va == 0 {
				continue // zero factor contributes nothing to the outer product
			}
			for b = 0; b < f; b++ {
				m[a*f+b] += cPos * va * row[b]
			}
		}
	}

	return nil
}
