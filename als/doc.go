// Package als implements the weighted-regularized alternating
// least squares (WRMF) solver for implicit-feedback factorization.
//
// 🚀 What is ALS here?
//
//	Given a sparse boolean interaction matrix R (users × items) and
//	dense factor matrices W (users × F) and H (items × F), one epoch
//	re-solves every user row against a fixed H, then every item row
//	against the freshly updated W. Each row solve is a ridge system:
//
//	  (G + C_u + λI) x = b_u
//
//	where G = HᵀH is shared across all rows of a pass,
//	C_u[a,b] = c_pos·Σ_{i∈S} H[i,a]·H[i,b] corrects the uniform
//	negative baseline to the observed positives of row u, and
//	b_u[a] = (1+c_pos)·Σ_{i∈S} H[i,a] is the right-hand side.
//
// ✨ Key features:
//   - unobserved entries are never iterated: O(F²·N) for G once, then
//     O(F²·|S| + F³) per row instead of O(F²·I)
//   - a dedicated symmetric-positive-definite Cholesky solve per row —
//     no general inversion, no external linear-algebra dependency
//   - optional row parallelism (Options.Workers) over disjoint row
//     ranges; results are identical to the serial pass
//   - deterministic: fixed loop orders, no randomness inside the core
//
// ⚙️ Usage:
//
//	opts := als.DefaultOptions()
//	opts.NumFactors = 16
//	opts.Reg = 0.05
//
//	// one training epoch: users first, then items against the new W
//	err := als.Iterate(r, r.Transposed(), w, h, opts)
//
// Fit reporting is intentionally unsupported: ComputeFit always
// returns FitUnavailable, never an approximate loss.
//
// Keep λ > 0 whenever any row of R may be empty; with λ = 0 an empty
// row yields a singular system and ErrSingularSystem.
package als
