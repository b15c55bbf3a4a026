// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/reelmatch/internal/artwork"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

func abcCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Item{
		{Title: "A", Type: catalog.MediaMovie, Description: "space adventure crew"},
		{Title: "B", Type: catalog.MediaMovie, Description: "space adventure crew"},
		{Title: "C", Type: catalog.MediaMovie, Description: "cooking baking show"},
	})
}

func newTestService(t *testing.T, cat *catalog.Catalog, opts ...Option) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), cat, opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestService_RecommendEndToEnd(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, abcCatalog())
	rec, err := svc.Recommend(context.Background(), "A", "", 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if rec.Source.Title != "A" {
		t.Errorf("source = %q, want A", rec.Source.Title)
	}
	if len(rec.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(rec.Recommendations))
	}
	b, c := rec.Recommendations[0], rec.Recommendations[1]
	if b.Title != "B" || c.Title != "C" {
		t.Fatalf("order = [%s %s], want [B C]", b.Title, c.Title)
	}
	if math.Abs(b.Similarity-1) > 1e-3 {
		t.Errorf("B similarity = %v, want ~1", b.Similarity)
	}
	if math.Abs(c.Similarity) > 1e-3 {
		t.Errorf("C similarity = %v, want ~0", c.Similarity)
	}
	if rec.MethodRequested != MethodText || rec.MethodUsed != MethodText || rec.Fallback {
		t.Errorf("methods = %s/%s fallback=%v", rec.MethodRequested, rec.MethodUsed, rec.Fallback)
	}
}

func TestService_RecommendDefaultsAndCaps(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, abcCatalog())

	rec, err := svc.Recommend(context.Background(), "a", "tfidf", 0)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// n defaults to DefaultN, then caps at N-1
	if len(rec.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(rec.Recommendations))
	}

	rec, err = svc.Recommend(context.Background(), "A", "", 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(rec.Recommendations) != 1 || rec.Recommendations[0].Title != "B" {
		t.Errorf("n=1 got %+v", rec.Recommendations)
	}
}

func TestService_RecommendErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, abcCatalog())
	tests := []struct {
		name    string
		title   string
		method  string
		n       int
		wantErr error
	}{
		{"unknown title", "Zzz", "", 5, ErrTitleNotFound},
		{"negative n", "A", "", -1, ErrInvalidRequest},
		{"unknown method", "A", "collaborative", 5, ErrInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, err := svc.Recommend(context.Background(), tt.title, tt.method, tt.n)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if rec != nil {
				t.Error("expected no partial result on error")
			}
		})
	}
}

// TestService_EmbeddingFallback is not parallel so the metric delta is stable.
func TestService_EmbeddingFallback(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, abcCatalog())

	counter := metrics.RecommendationsTotal.WithLabelValues(string(MethodText), "true")
	before := testutil.ToFloat64(counter)

	ctx := logging.ContextWithLogger(context.Background(), logging.NewTestLogger(&buf))
	rec, err := svc.Recommend(ctx, "A", "similarity-embedding", 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.MethodRequested != MethodEmbedding || rec.MethodUsed != MethodText || !rec.Fallback {
		t.Errorf("methods = %s/%s fallback=%v, want embedding/text/true",
			rec.MethodRequested, rec.MethodUsed, rec.Fallback)
	}
	if rec.Recommendations[0].Title != "B" {
		t.Errorf("fallback ranking top = %q, want B", rec.Recommendations[0].Title)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("fallback counter delta = %v, want 1", got)
	}
	if !strings.Contains(buf.String(), "falling back") {
		t.Errorf("expected fallback warning in log, got %q", buf.String())
	}
	if svc.Stats().EmbeddingAvailable {
		t.Error("EmbeddingAvailable should be false")
	}
}

func TestService_EmbeddingProvider(t *testing.T) {
	t.Parallel()

	// cos(row0, row1) = 0.86666, cos(row0, row2) = 0
	y := math.Sqrt(1 - 0.86666*0.86666)
	embeddings := [][]float64{
		{1, 0, 0},
		{0.86666, y, 0},
		{0, 0, 1},
	}
	svc := newTestService(t, abcCatalog(), WithEmbeddings(embeddings))

	rec, err := svc.Recommend(context.Background(), "A", "embedding", 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.MethodUsed != MethodEmbedding || rec.Fallback {
		t.Errorf("method_used = %s fallback=%v", rec.MethodUsed, rec.Fallback)
	}
	if rec.Recommendations[0].Title != "B" || rec.Recommendations[0].Similarity != 0.867 {
		t.Errorf("top = %s %.6f, want B 0.867", rec.Recommendations[0].Title, rec.Recommendations[0].Similarity)
	}
	if !svc.Stats().EmbeddingAvailable {
		t.Error("EmbeddingAvailable should be true")
	}
}

func TestService_EmbeddingShapeMismatch(t *testing.T) {
	t.Parallel()

	_, err := NewService(context.Background(), abcCatalog(), WithEmbeddings([][]float64{{1}, {1}}))
	if !errors.Is(err, catalog.ErrEmbeddingShape) {
		t.Errorf("err = %v, want ErrEmbeddingShape", err)
	}
}

func TestService_EmptyCatalog(t *testing.T) {
	t.Parallel()

	_, err := NewService(context.Background(), catalog.New(nil))
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestService_CancelledBuild(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewService(ctx, abcCatalog()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestService_Search(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]catalog.Item{
		{Title: "Space Force", Type: catalog.MediaTVShow, ReleaseYear: catalog.IntPtr(2020)},
		{Title: "Dark", Type: catalog.MediaTVShow, Description: "space time travel"},
		{Title: "Inspector Clouseau", Type: catalog.MediaMovie},
	})
	svc := newTestService(t, cat)

	got := svc.Search("SP")
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(got), got)
	}
	if got[0].Title != "Space Force" || got[0].Type != catalog.MediaTVShow || got[0].ReleaseYear == nil || *got[0].ReleaseYear != 2020 {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Title != "Inspector Clouseau" || got[1].ReleaseYear != nil {
		t.Errorf("second = %+v", got[1])
	}
	if res := svc.Search("s"); len(res) != 0 {
		t.Errorf("single-character query returned %d results", len(res))
	}
}

func TestService_Stats(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]catalog.Item{
		{Title: "m1", Type: catalog.MediaMovie, Description: "alpha"},
		{Title: "m2", Type: catalog.MediaMovie, Description: "beta"},
		{Title: "s1", Type: catalog.MediaTVShow, Description: "gamma"},
	})
	s := newTestService(t, cat).Stats()
	if s.TotalItems != 3 || s.Movies != 2 || s.TVShows != 1 {
		t.Errorf("stats = %+v", s)
	}
	if s.VocabularySize == 0 {
		t.Error("expected a non-empty vocabulary")
	}
}

// stubEnricher returns a poster named after each key's title.
type stubEnricher struct {
	keys []artwork.Key
}

func (e *stubEnricher) EnrichAll(_ context.Context, keys []artwork.Key) []artwork.Artwork {
	e.keys = keys
	out := make([]artwork.Artwork, len(keys))
	for i, k := range keys {
		if k.Title == "C" {
			continue
		}
		p := "poster-" + k.Title
		out[i] = artwork.Artwork{Poster: &p}
	}
	return out
}

func TestService_Enrichment(t *testing.T) {
	t.Parallel()

	enr := &stubEnricher{}
	svc := newTestService(t, abcCatalog(), WithEnricher(enr))

	rec, err := svc.Recommend(context.Background(), "A", "", 2)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(enr.keys) != 3 || enr.keys[0].Title != "A" || enr.keys[0].MediaType != "Movie" {
		t.Fatalf("enricher keys = %+v", enr.keys)
	}
	if rec.Source.Poster == nil || *rec.Source.Poster != "poster-A" {
		t.Errorf("source poster = %v", rec.Source.Poster)
	}
	if p := rec.Recommendations[0].Poster; p == nil || *p != "poster-B" {
		t.Errorf("B poster = %v", p)
	}
	if rec.Recommendations[1].Poster != nil {
		t.Error("C should have no artwork")
	}
}
