// Package model owns the trained state of a WRMF run: the interaction
// matrix, the immutable options, and the two factor matrices the als
// core mutates in place.
//
// ✨ What it adds on top of the core:
//   - New       — validates options, allocates W/H and draws their
//     Gaussian initialization (seed it for reproducible runs)
//   - Iterate   — advances the model by exactly one training epoch
//   - Train     — drives NumIter epochs; honors context cancellation
//     between epochs only, never mid-row
//   - Predict   — preference score: dot(W[u], H[i])
//   - Recommend — deterministic top-N items for a user, optionally
//     skipping already-seen items
//
// Fit reporting stays unsupported: ComputeFit forwards the core's
// FitUnavailable sentinel.
//
// ⚙️ Usage:
//
//	r, _ := sparse.NewBool(users, items, entries)
//	m, _ := model.New(r, als.DefaultOptions(), rand.New(rand.NewSource(42)))
//	if err := m.Train(ctx); err != nil { ... }
//	top, _ := m.Recommend(0, 10, true)
package model
