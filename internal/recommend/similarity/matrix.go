// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package similarity builds dense all-pairs cosine similarity matrices.
//
// A build is O(N²·d) time and O(N²) memory, which is the dominant cost of the
// whole service. Cells are stored as float32 to halve that footprint; a
// 10k-item catalog needs ~400MB per matrix. Matrices are read-only once built.
//
// float32 keeps about 7 significant digits, so cosines closer than ~1e-7
// land in the same cell and rank as ties.
package similarity

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/recommend/vectorize"
)

// Matrix is a square, symmetric similarity matrix in row-major order.
type Matrix struct {
	n    int
	data []float32
}

// Size returns the number of rows (and columns).
func (m *Matrix) Size() int {
	return m.n
}

// At returns sim(i, j).
func (m *Matrix) At(i, j int) float64 {
	return float64(m.data[i*m.n+j])
}

// Row returns row i. The slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float32 {
	return m.data[i*m.n : (i+1)*m.n]
}

// BuildSparse computes cosine similarity between TF-IDF rows.
func BuildSparse(ctx context.Context, rows []vectorize.TermVector) (*Matrix, error) {
	norms := make([]float64, len(rows))
	for i, r := range rows {
		norms[i] = r.Norm()
	}
	return build(ctx, len(rows), norms, func(i, j int) float64 {
		return rows[i].Dot(rows[j])
	})
}

// BuildDense computes cosine similarity between dense embedding rows. All
// rows must have the same width.
func BuildDense(ctx context.Context, rows [][]float64) (*Matrix, error) {
	norms := make([]float64, len(rows))
	for i, r := range rows {
		if len(r) != len(rows[0]) {
			return nil, fmt.Errorf("embedding row %d has width %d, want %d", i, len(r), len(rows[0]))
		}
		norms[i] = denseNorm(r)
	}
	return build(ctx, len(rows), norms, func(i, j int) float64 {
		return denseDot(rows[i], rows[j])
	})
}

// build fills the upper triangle row by row in parallel and mirrors each
// cell. Row task i owns cells (i, j≥i) and (j≥i, i), so no two tasks write
// the same cell.
func build(ctx context.Context, n int, norms []float64, dot func(i, j int) float64) (*Matrix, error) {
	m := &Matrix{n: n, data: make([]float32, n*n)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if norms[i] == 0 {
				// zero rows are 0 against everything, diagonal included
				return nil
			}
			m.data[i*n+i] = 1
			for j := i + 1; j < n; j++ {
				if norms[j] == 0 {
					continue
				}
				s := float32(clamp(dot(i, j) / (norms[i] * norms[j])))
				m.data[i*n+j] = s
				m.data[j*n+i] = s
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("similarity build canceled: %w", err)
	}
	return m, nil
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func denseNorm(v []float64) float64 {
	return math.Sqrt(denseDot(v, v))
}

func denseDot(a, b []float64) float64 {
	var sum float64
	for k := range a {
		sum += a[k] * b[k]
	}
	return sum
}
