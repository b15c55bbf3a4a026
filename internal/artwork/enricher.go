// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package artwork

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// EnricherConfig controls caching and fan-out.
type EnricherConfig struct {
	// CacheSize is the LRU capacity. Default: 1000
	CacheSize int

	// Timeout bounds each external call. Default: 5s
	Timeout time.Duration

	// MaxConcurrency caps parallel lookups within one EnrichAll. Default: 8
	MaxConcurrency int
}

// Enricher memoizes artwork lookups.
//
// Concurrent lookups for the same key share one external call through
// singleflight; lookups for different keys never wait on each other.
type Enricher struct {
	fetcher        Fetcher
	cache          *cache.LRUCache[Result]
	group          singleflight.Group
	timeout        time.Duration
	maxConcurrency int
}

// NewEnricher creates an Enricher over fetcher.
func NewEnricher(fetcher Fetcher, cfg EnricherConfig) *Enricher {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = cache.DefaultCapacity
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 8
	}
	return &Enricher{
		fetcher:        fetcher,
		cache:          cache.NewLRUCache[Result](cfg.CacheSize, 0),
		timeout:        cfg.Timeout,
		maxConcurrency: cfg.MaxConcurrency,
	}
}

// Lookup returns artwork for key. It never fails: on any error the result
// is an empty Artwork and nothing is cached.
func (e *Enricher) Lookup(ctx context.Context, key Key) Artwork {
	ck := key.CacheKey()
	if res, ok := e.cache.Get(ck); ok {
		metrics.ArtworkCacheHits.Inc()
		return res.Artwork
	}
	metrics.ArtworkCacheMisses.Inc()

	v, err, _ := e.group.Do(ck, func() (interface{}, error) {
		// another flight may have filled the entry while we waited
		if res, ok := e.cache.Peek(ck); ok {
			return res, nil
		}

		// the shared call must not die with whichever caller started it
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
		defer cancel()

		res, err := e.fetcher.Fetch(callCtx, key)
		if err != nil {
			metrics.ArtworkLookups.WithLabelValues("error").Inc()
			return nil, err
		}
		if res.Found {
			metrics.ArtworkLookups.WithLabelValues("found").Inc()
		} else {
			metrics.ArtworkLookups.WithLabelValues("not_found").Inc()
		}
		e.cache.Add(ck, res)
		metrics.ArtworkCacheEntries.Set(float64(e.cache.Len()))
		return res, nil
	})
	if err != nil {
		logging.Ctx(ctx).Warn().
			Str("component", "artwork").
			Err(fmt.Errorf("%w: %w", ErrEnrichmentUnavailable, err)).
			Str("title", key.Title).
			Str("media_type", key.MediaType).
			Int("year", key.Year).
			Msg("Artwork lookup failed, continuing without artwork")
		return Artwork{}
	}

	res, ok := v.(Result)
	if !ok {
		return Artwork{}
	}
	return res.Artwork
}

// EnrichAll looks up every key in parallel, bounded by MaxConcurrency.
// out[i] always corresponds to keys[i]; a failed key yields an empty Artwork
// without affecting its siblings.
func (e *Enricher) EnrichAll(ctx context.Context, keys []Key) []Artwork {
	out := make([]Artwork, len(keys))

	var g errgroup.Group
	g.SetLimit(e.maxConcurrency)
	for i, k := range keys {
		g.Go(func() error {
			out[i] = e.Lookup(ctx, k)
			return nil
		})
	}
	_ = g.Wait() // Lookup never fails
	return out
}

// CacheStats exposes LRU counters for the metrics publisher.
func (e *Enricher) CacheStats() cache.Stats {
	return e.cache.Stats()
}
