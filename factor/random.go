package factor

import "math/rand"

// NewNormal creates an r×c Dense matrix whose entries are drawn from
// a Gaussian with the given mean and standard deviation — the usual
// starting point for latent factors before the first ALS epoch.
//
// rng may be nil, in which case the global math/rand source is used;
// pass a seeded *rand.Rand for deterministic initialization.
// Complexity: O(r*c).
func NewNormal(rows, cols int, mean, stddev float64, rng *rand.Rand) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	norm := rand.NormFloat64
	if rng != nil {
		norm = rng.NormFloat64
	}
	for i := range m.data {
		m.data[i] = norm()*stddev + mean
	}

	return m, nil
}
