// SPDX-License-Identifier: MIT
// Package als: symmetric-positive-definite row solver.
//
// Purpose:
//   - Solve the regularized normal-equations system M x = b of one row
//     via Cholesky factorization plus forward/back substitution.
//
// Notes:
//   - Only a solve is ever needed per row — never a reusable inverse —
//     so no full inversion is performed.
//   - M is factorized in place; callers pass a scratch copy.

package als

import "math"

// solveSPD solves M x = b for a symmetric positive-definite M given
// as a flat row-major n×n slice, overwriting M's lower triangle with
// its Cholesky factor L (M = L·Lᵀ) and returning a fresh solution
// vector.
//
// Implementation:
//   - Stage 1: Cholesky factorization, column by column; a pivot that
//     is not strictly positive means M is not positive-definite.
//   - Stage 2: forward substitution L·y = b (top-down).
//   - Stage 3: back substitution Lᵀ·x = y (bottom-up).
//
// Errors:
//   - ErrSingularSystem — non-positive pivot encountered. With λ > 0
//     on the diagonal this cannot happen; it is the λ=0, empty-row
//     case callers must rule out by keeping the regularization positive.
//
// Determinism:
//   - Fixed j→i→k loop orders; identical inputs give identical bits.
//
// Complexity:
//   - Time O(n³/3), Space O(n) for the returned vector.
//
// AI-Hints:
//   - Pass a scratch copy of the system; the factorization clobbers it.
//   - Prefer this over LU/Inverse for normal equations: half the flops
//     and no pivoting needed on a positive-definite system.
func solveSPD(m, b []float64, n int) ([]float64, error) {
	var i, j, k int
	var sum, pivot float64

	// Cholesky factorization: L overwrites the lower triangle of m.
	for j = 0; j < n; j++ {
		sum = m[j*n+j]
		for k = 0; k < j; k++ {
			sum -= m[j*n+k] * m[j*n+k]
		}
		if sum <= 0 {
			return nil, ErrSingularSystem // not positive-definite
		}
		pivot = math.Sqrt(sum)
		m[j*n+j] = pivot
		for i = j + 1; i < n; i++ {
			sum = m[i*n+j]
			for k = 0; k < j; k++ {
				sum -= m[i*n+k] * m[j*n+k]
			}
			m[i*n+j] = sum / pivot
		}
	}

	// Forward substitution: L·y = b.
	x := make([]float64, n)
	for i = 0; i < n; i++ {
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= m[i*n+k] * x[k]
		}
		x[i] = sum / m[i*n+i]
	}

	// Back substitution: Lᵀ·x = y, reusing x in place.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= m[k*n+i] * x[k]
		}
		x[i] = sum / m[i*n+i]
	}

	return x, nil
}
