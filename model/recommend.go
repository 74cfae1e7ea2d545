package model

import (
	"fmt"
	"sort"
)

// ItemScore is one ranked recommendation: an item index and its
// predicted preference score for the queried user.
type ItemScore struct {
	Item  int
	Score float64
}

// Recommend returns the top-n items for user u, ranked by predicted
// score in descending order. Ties break on the lower item index, so
// the ranking is fully deterministic. With excludeSeen, items the
// user already interacted with are skipped before ranking.
//
// Fewer than n results are returned when the candidate pool is
// smaller than n.
//
// Errors: ErrInvalidTopN, ErrUnknownUser.
// Complexity: O(I·F + I·log I).
func (m *Model) Recommend(u, n int, excludeSeen bool) ([]ItemScore, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Recommend(%d,%d): %w", u, n, ErrInvalidTopN)
	}
	wu, err := m.w.Row(u)
	if err != nil {
		return nil, fmt.Errorf("Recommend(%d,%d): %w", u, n, ErrUnknownUser)
	}

	var seen map[int]struct{}
	if excludeSeen {
		cols, serr := m.data.RowEntries(u)
		if serr != nil {
			return nil, fmt.Errorf("Recommend(%d,%d): %w", u, n, serr)
		}
		seen = make(map[int]struct{}, len(cols))
		for _, c := range cols {
			seen[c] = struct{}{}
		}
	}

	// Score every candidate item against the user's latent vector.
	scores := make([]ItemScore, 0, m.h.Rows())
	for i := 0; i < m.h.Rows(); i++ {
		if _, skip := seen[i]; skip {
			continue
		}
		hi, rerr := m.h.Row(i)
		if rerr != nil {
			return nil, fmt.Errorf("Recommend(%d,%d): %w", u, n, rerr)
		}
		scores = append(scores, ItemScore{Item: i, Score: dot(wu, hi)})
	}

	// Candidates enter in ascending item order, so a stable sort on
	// score alone keeps ties deterministic by item index.
	sort.SliceStable(scores, func(a, b int) bool { return scores[a].Score > scores[b].Score })
	if len(scores) > n {
		scores = scores[:n]
	}

	return scores, nil
}
