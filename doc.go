// Package implicit is a small, dependency-light toolkit for learning
// latent-factor models from implicit feedback — clicks, plays,
// purchases — where only positive signals are ever observed.
//
// 🚀 What is implicit?
//
//	A weighted-regularized matrix factorization (WRMF) library built
//	around alternating least squares:
//		• sparse/ — immutable CSR boolean interaction matrices with cached transpose views
//		• factor/ — dense row-major factor matrices with Gaussian initialization
//		• als/    — the solver core: Gram precomputation, per-row Cholesky solves,
//		            the alternating user/item epoch controller
//		• model/  — model container: training loop, prediction, top-N recommendation
//		• cmd/wrmf — a trainer CLI for CSV interaction logs
//
// ✨ Why choose implicit?
//
//   - Deterministic – seeded initialization, fixed loop orders, reproducible runs
//   - Fast where it counts – unobserved entries are never iterated; each row costs
//     O(F²·|S|) on top of a shared O(F²·N) Gram matrix
//   - Rock-solid error surface – sentinel errors, no panics on user input
//   - Pure Go numerics – no cgo, no BLAS bindings
//
// Quick sketch of one training epoch:
//
//	W ← argmin ‖R − W·Hᵀ‖  (H fixed, per-user ridge solves)
//	H ← argmin ‖R − W·Hᵀ‖  (the refreshed W fixed, per-item ridge solves)
//
// Dive into the per-package docs for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/implicit
package implicit
