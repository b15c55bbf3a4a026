// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/artwork"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
	"github.com/tomtom215/reelmatch/internal/recommend/vectorize"
)

const (
	// DefaultN is used when a request does not specify how many results it wants.
	DefaultN = 10
)

// Enricher attaches artwork to a result set. out[i] must match keys[i].
type Enricher interface {
	EnrichAll(ctx context.Context, keys []artwork.Key) []artwork.Artwork
}

// Service is the boundary the HTTP layer talks to. It is immutable after
// NewService returns and safe for concurrent use.
type Service struct {
	cat       *catalog.Catalog
	resolver  *Resolver
	vocab     *vectorize.Vocabulary
	text      SimilarityProvider
	embedding SimilarityProvider
	enricher  Enricher
	logger    zerolog.Logger

	maxFeatures int
	embeddings  [][]float64
	searchLimit int
}

// Option configures NewService.
type Option func(*Service)

// WithMaxFeatures caps the TF-IDF vocabulary.
func WithMaxFeatures(n int) Option {
	return func(s *Service) { s.maxFeatures = n }
}

// WithEmbeddings supplies a dense matrix aligned row-for-row with the
// catalog. Without it the embedding method is unavailable.
func WithEmbeddings(rows [][]float64) Option {
	return func(s *Service) { s.embeddings = rows }
}

// WithEnricher enables artwork enrichment of results.
func WithEnricher(e Enricher) Option {
	return func(s *Service) { s.enricher = e }
}

// WithSearchLimit overrides DefaultSearchLimit.
func WithSearchLimit(n int) Option {
	return func(s *Service) { s.searchLimit = n }
}

// WithLogger overrides the component logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService vectorizes the catalog and builds every similarity matrix.
// It blocks until done and is meant to run once at startup.
func NewService(ctx context.Context, cat *catalog.Catalog, opts ...Option) (*Service, error) {
	s := &Service{
		cat:         cat,
		maxFeatures: vectorize.DefaultMaxFeatures,
		searchLimit: DefaultSearchLimit,
		logger:      logging.WithComponent("recommend"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.embeddings != nil && len(s.embeddings) != cat.Len() {
		return nil, fmt.Errorf("%w: %d embedding rows for %d catalog items",
			catalog.ErrEmbeddingShape, len(s.embeddings), cat.Len())
	}

	s.resolver = NewResolver(cat)

	start := time.Now()
	vocab, rows, err := vectorize.FitTransform(cat.TextBlobs(), s.maxFeatures)
	if err != nil {
		return nil, fmt.Errorf("vectorize catalog: %w", err)
	}
	s.vocab = vocab
	s.logger.Info().
		Int("items", cat.Len()).
		Int("vocabulary", vocab.Len()).
		Dur("duration", time.Since(start)).
		Msg("TF-IDF vocabulary fit")

	textMatrix, err := s.buildMatrix(ctx, MethodText, func(ctx context.Context) (*similarity.Matrix, error) {
		return similarity.BuildSparse(ctx, rows)
	})
	if err != nil {
		return nil, err
	}
	s.text = newMatrixProvider(MethodText, textMatrix)

	if s.embeddings == nil {
		s.embedding = unavailableProvider{method: MethodEmbedding, reason: "no embeddings artifact loaded"}
	} else {
		embedMatrix, err := s.buildMatrix(ctx, MethodEmbedding, func(ctx context.Context) (*similarity.Matrix, error) {
			return similarity.BuildDense(ctx, s.embeddings)
		})
		if err != nil {
			return nil, err
		}
		s.embedding = newMatrixProvider(MethodEmbedding, embedMatrix)
	}
	// rows live on in the matrix; drop the source slice
	s.embeddings = nil

	metrics.IndexItems.Set(float64(cat.Len()))
	metrics.IndexVocabularySize.Set(float64(vocab.Len()))
	return s, nil
}

func (s *Service) buildMatrix(ctx context.Context, method Method, build func(context.Context) (*similarity.Matrix, error)) (*similarity.Matrix, error) {
	start := time.Now()
	m, err := build(ctx)
	if err != nil {
		return nil, fmt.Errorf("build %s matrix: %w", method, err)
	}
	d := time.Since(start)
	metrics.ObserveSimilarityBuild(string(method), d)
	s.logger.Info().
		Str("method", string(method)).
		Int("size", m.Size()).
		Dur("duration", d).
		Msg("Similarity matrix built")
	return m, nil
}

// Provider returns the provider that will serve method, and whether the
// request had to fall back to text similarity.
func (s *Service) Provider(method Method) (SimilarityProvider, bool) {
	if method == MethodEmbedding {
		if s.embedding.Available() {
			return s.embedding, false
		}
		return s.text, true
	}
	return s.text, false
}

// Recommend returns the n items most similar to title. n == 0 means DefaultN.
// Either the full list is returned or an error, never a partial list.
func (s *Service) Recommend(ctx context.Context, title, method string, n int) (*Recommendation, error) {
	requested, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = DefaultN
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidRequest, n)
	}

	idx, err := s.resolver.Resolve(title)
	if err != nil {
		return nil, err
	}

	provider, fallback := s.Provider(requested)
	if fallback {
		logging.Ctx(ctx).Warn().
			Str("requested", string(requested)).
			Str("used", string(provider.Method())).
			Msg("Embedding similarity unavailable, falling back to text similarity")
	}

	neighbors, err := provider.TopN(idx, n)
	if err != nil {
		return nil, fmt.Errorf("rank neighbours of %q: %w", title, err)
	}

	rec := &Recommendation{
		Source:          SourceItem{Item: s.cat.Item(idx)},
		Recommendations: make([]RecommendedItem, len(neighbors)),
		MethodRequested: requested,
		MethodUsed:      provider.Method(),
		Fallback:        fallback,
	}
	for i, nb := range neighbors {
		rec.Recommendations[i] = RecommendedItem{
			Item:       s.cat.Item(nb.Index),
			Similarity: RoundScore(nb.Score),
		}
	}

	if s.enricher != nil {
		s.enrich(ctx, rec)
	}

	metrics.RecordRecommendation(string(rec.MethodUsed), fallback)
	return rec, nil
}

// enrich fetches artwork for the source and every recommendation in one batch.
func (s *Service) enrich(ctx context.Context, rec *Recommendation) {
	keys := make([]artwork.Key, 0, len(rec.Recommendations)+1)
	keys = append(keys, artworkKey(&rec.Source.Item))
	for i := range rec.Recommendations {
		keys = append(keys, artworkKey(&rec.Recommendations[i].Item))
	}

	art := s.enricher.EnrichAll(ctx, keys)
	if len(art) != len(keys) {
		return
	}
	rec.Source.Artwork = art[0]
	for i := range rec.Recommendations {
		rec.Recommendations[i].Artwork = art[i+1]
	}
}

func artworkKey(it *catalog.Item) artwork.Key {
	return artwork.Key{Title: it.Title, MediaType: string(it.Type), Year: it.Year()}
}

// Search returns autocomplete candidates whose title contains query.
func (s *Service) Search(query string) []SearchResult {
	idx := s.resolver.Search(query, s.searchLimit)
	out := make([]SearchResult, len(idx))
	for i, row := range idx {
		it := s.cat.Item(row)
		out[i] = SearchResult{Title: it.Title, Type: it.Type, ReleaseYear: it.ReleaseYear}
	}
	return out
}

// Resolve exposes title resolution for callers that only need the row.
func (s *Service) Resolve(title string) (int, error) {
	return s.resolver.Resolve(title)
}

// Stats summarizes the loaded catalog.
func (s *Service) Stats() Stats {
	return Stats{
		TotalItems:         s.cat.Len(),
		Movies:             s.cat.MovieCount(),
		TVShows:            s.cat.ShowCount(),
		EmbeddingAvailable: s.embedding.Available(),
		VocabularySize:     s.vocab.Len(),
	}
}
