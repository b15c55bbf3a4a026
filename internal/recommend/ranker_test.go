// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

func denseMatrix(t *testing.T, rows [][]float64) *similarity.Matrix {
	t.Helper()
	m, err := similarity.BuildDense(context.Background(), rows)
	if err != nil {
		t.Fatalf("BuildDense: %v", err)
	}
	return m
}

func TestTopN_OrderAndSelfExclusion(t *testing.T) {
	t.Parallel()

	m := denseMatrix(t, [][]float64{
		{1, 0},
		{0, 1},   // 0.0 to row 0
		{1, 1},   // ~0.707 to row 0
		{1, 0},   // 1.0 to row 0
		{1, 0.1}, // ~0.995 to row 0
	})

	got, err := TopN(m, 0, 10)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	wantOrder := []int{3, 4, 2, 1}
	if len(got) != len(wantOrder) {
		t.Fatalf("len = %d, want %d (n capped at N-1)", len(got), len(wantOrder))
	}
	for i, nb := range got {
		if nb.Index == 0 {
			t.Fatal("query row must not appear in its own results")
		}
		if nb.Index != wantOrder[i] {
			t.Errorf("position %d = row %d, want %d", i, nb.Index, wantOrder[i])
		}
		if i > 0 && nb.Score > got[i-1].Score {
			t.Errorf("scores not descending at %d", i)
		}
	}
}

func TestTopN_TiesBreakByIndex(t *testing.T) {
	t.Parallel()

	m := denseMatrix(t, [][]float64{
		{1, 0},
		{0, 1},
		{0, 2},
		{0, 3},
	})
	got, err := TopN(m, 0, 3)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].Index != want {
			t.Errorf("position %d = row %d, want %d", i, got[i].Index, want)
		}
	}
}

func TestTopN_Truncates(t *testing.T) {
	t.Parallel()

	m := denseMatrix(t, [][]float64{{1}, {1}, {1}, {1}})
	got, err := TopN(m, 2, 2)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	if len(got) != 2 || got[0].Index != 0 || got[1].Index != 1 {
		t.Errorf("got %+v, want rows 0 and 1", got)
	}
}

func TestTopN_SingleItemCatalog(t *testing.T) {
	t.Parallel()

	m := denseMatrix(t, [][]float64{{1, 2}})
	got, err := TopN(m, 0, 5)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d neighbours, want 0", len(got))
	}
}

func TestTopN_InvalidArguments(t *testing.T) {
	t.Parallel()

	m := denseMatrix(t, [][]float64{{1}, {1}})
	tests := []struct {
		name     string
		index, n int
	}{
		{"zero n", 0, 0},
		{"negative n", 0, -1},
		{"negative index", -1, 1},
		{"index past end", 2, 1},
	}
	for _, tt := range tests {
		if _, err := TopN(m, tt.index, tt.n); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("%s: err = %v, want ErrInvalidRequest", tt.name, err)
		}
	}
}

func TestRoundScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{0.86666, 0.867},
		{0.12345, 0.123},
		{1, 1},
		{0, 0},
		{0.0004, 0},
	}
	for _, tt := range tests {
		if got := RoundScore(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("RoundScore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"", MethodText, false},
		{"similarity-text", MethodText, false},
		{"tfidf", MethodText, false},
		{" TFIDF ", MethodText, false},
		{"similarity-embedding", MethodEmbedding, false},
		{"embedding", MethodEmbedding, false},
		{"collaborative", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("ParseMethod(%q) err = %v, want ErrInvalidRequest", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMethod(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
