// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// ScorePrecision is the number of decimals reported to clients.
const ScorePrecision = 3

// Neighbor is one ranked row and its unrounded similarity to the query row.
type Neighbor struct {
	Index int
	Score float64
}

// TopN returns the n rows most similar to index, excluding index itself.
// Ordering is score descending, then row index ascending. When n exceeds
// the number of other rows, all of them are returned.
func TopN(m *similarity.Matrix, index, n int) ([]Neighbor, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidRequest, n)
	}
	size := m.Size()
	if index < 0 || index >= size {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidRequest, index, size)
	}

	row := m.Row(index)
	neighbors := make([]Neighbor, 0, size-1)
	for j, s := range row {
		if j == index {
			continue
		}
		neighbors = append(neighbors, Neighbor{Index: j, Score: float64(s)})
	}

	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].Score != neighbors[b].Score {
			return neighbors[a].Score > neighbors[b].Score
		}
		return neighbors[a].Index < neighbors[b].Index
	})

	if n < len(neighbors) {
		neighbors = neighbors[:n]
	}
	return neighbors, nil
}

// RoundScore rounds half away from zero to ScorePrecision decimals.
// Only response builders call it; ranking always uses raw scores.
func RoundScore(s float64) float64 {
	p := math.Pow10(ScorePrecision)
	return math.Round(s*p) / p
}
