// Package sparse provides the immutable boolean interaction matrix
// consumed by the ALS core.
//
// 🚀 What is sparse.Bool?
//
//	A compressed-sparse-row (CSR) matrix over boolean entries: entry
//	(r,c) is true iff an implicit positive signal was observed for
//	that (user,item) pair. Zeros are never materialized.
//
// ✨ Key features:
//   - CSR storage: O(rows + nnz) memory, O(1) row enumeration
//   - Transposed() view for the item-side optimizer pass, built once
//     and cached (safe for concurrent readers)
//   - duplicate entries collapse at construction; entries are
//     validated against the declared shape
//   - immutable after construction — safe to share across goroutines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/implicit/sparse"
//
//	r, err := sparse.NewBool(3, 4, [][2]int{{0, 1}, {0, 3}, {2, 0}})
//	cols, _ := r.RowEntries(0) // [1 3]
//	rt := r.Transposed()       // 4×3 view
//
// Complexity:
//
//   - Build:      O(nnz·log nnz) (per-row sort + dedupe)
//   - RowEntries: O(1) (shared subslice of the index)
//   - Transposed: O(nnz) once, O(1) afterwards
package sparse
