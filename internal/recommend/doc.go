// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements the content-based similarity engine.
//
// # Architecture
//
// Everything expensive happens once, in NewService:
//
//  1. The catalog's text blobs are vectorized with TF-IDF (package vectorize).
//  2. An all-pairs cosine matrix is built from the TF-IDF rows (package similarity).
//  3. If an embedding matrix was supplied, a second cosine matrix is built from it.
//
// After that the Service is read-only and safe for concurrent use without
// locks. Each request resolves a title to a row (Resolver), ranks the row's
// neighbours in the selected matrix (SimilarityProvider.TopN) and optionally
// enriches the result set with artwork (Enricher).
//
// # Similarity Methods
//
// Two providers sit behind the SimilarityProvider interface:
//
//   - similarity-text: TF-IDF cosine, always available
//   - similarity-embedding: dense embedding cosine, available only when an
//     embedding artifact was loaded
//
// Requesting embeddings when they are unavailable falls back to text and the
// response reports method_used and fallback=true.
//
// # Ranking
//
// Neighbours are sorted by score descending with ties broken by ascending row
// index, so results are deterministic. Scores are kept unrounded internally
// and rounded to three decimals (RoundScore) only when a response is built.
//
// # Usage
//
//	cat, _ := catalog.LoadCSV(ctx, "netflix_cleaned.csv")
//	svc, err := recommend.NewService(ctx, cat,
//	    recommend.WithMaxFeatures(10000),
//	    recommend.WithEnricher(enricher),
//	)
//	rec, err := svc.Recommend(ctx, "Inception", "similarity-text", 10)
package recommend
