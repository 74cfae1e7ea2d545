// Package factor provides the dense latent-factor matrices mutated by
// the ALS core: rows are entities (users or items), columns are
// latent factors.
//
// A Dense matrix stores float64 values in a flat row-major slice for
// cache friendliness. Row returns a direct view into that storage, so
// the optimizer can read fixed-side vectors and overwrite solved rows
// without copying.
//
// NewNormal draws the initial factors from a Gaussian with the
// configured mean and standard deviation; pass a seeded *rand.Rand
// for reproducible runs.
package factor
