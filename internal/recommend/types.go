// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"github.com/tomtom215/reelmatch/internal/artwork"
	"github.com/tomtom215/reelmatch/internal/catalog"
)

// SourceItem is the resolved query item.
type SourceItem struct {
	catalog.Item
	artwork.Artwork
}

// RecommendedItem is one ranked neighbour. Similarity is rounded to
// ScorePrecision decimals.
type RecommendedItem struct {
	catalog.Item
	Similarity float64 `json:"similarity"`
	artwork.Artwork
}

// Recommendation is the full answer to a recommend request.
type Recommendation struct {
	Source          SourceItem        `json:"source"`
	Recommendations []RecommendedItem `json:"recommendations"`
	MethodRequested Method            `json:"method_requested"`
	MethodUsed      Method            `json:"method_used"`

	// Fallback is true when embeddings were requested but text similarity served.
	Fallback bool `json:"fallback"`
}

// SearchResult is one autocomplete candidate.
type SearchResult struct {
	Title       string            `json:"title"`
	Type        catalog.MediaType `json:"type"`
	ReleaseYear *int              `json:"release_year"`
}

// Stats describes the loaded index.
type Stats struct {
	TotalItems         int  `json:"total_titles"`
	Movies             int  `json:"movies"`
	TVShows            int  `json:"tv_shows"`
	EmbeddingAvailable bool `json:"embedding_available"`
	VocabularySize     int  `json:"vocabulary_size"`
}
