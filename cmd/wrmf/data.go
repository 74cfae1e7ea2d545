package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/katalvlaran/implicit/sparse"
)

// loadInteractions reads a CSV of user,item pairs (string IDs, no
// header) and indexes both sides densely in first-seen order. The
// returned slices map dense indices back to the original IDs.
func loadInteractions(path string) (*sparse.Bool, []string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open interactions: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read interactions: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil, fmt.Errorf("read interactions: %s is empty", path)
	}

	userIdx := make(map[string]int)
	itemIdx := make(map[string]int)
	var users, items []string
	entries := make([][2]int, 0, len(records))
	for _, rec := range records {
		u, ok := userIdx[rec[0]]
		if !ok {
			u = len(users)
			userIdx[rec[0]] = u
			users = append(users, rec[0])
		}
		i, ok := itemIdx[rec[1]]
		if !ok {
			i = len(items)
			itemIdx[rec[1]] = i
			items = append(items, rec[1])
		}
		entries = append(entries, [2]int{u, i})
	}

	data, err := sparse.NewBool(len(users), len(items), entries)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build interaction matrix: %w", err)
	}

	return data, users, items, nil
}
