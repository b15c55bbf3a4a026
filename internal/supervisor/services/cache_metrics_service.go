// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// DefaultCacheMetricsInterval is how often cache stats are published.
const DefaultCacheMetricsInterval = 15 * time.Second

// CacheStatsSource is satisfied by *artwork.Enricher.
type CacheStatsSource interface {
	CacheStats() cache.Stats
}

// CacheMetricsService periodically copies artwork cache stats into the
// artwork_cache_entries gauge. Hit and miss counters are updated inline by
// the enricher; only the size needs polling.
type CacheMetricsService struct {
	source   CacheStatsSource
	interval time.Duration
}

// NewCacheMetricsService creates the publisher. A non-positive interval
// uses DefaultCacheMetricsInterval.
func NewCacheMetricsService(source CacheStatsSource, interval time.Duration) *CacheMetricsService {
	if interval <= 0 {
		interval = DefaultCacheMetricsInterval
	}
	return &CacheMetricsService{source: source, interval: interval}
}

// Serve implements suture.Service. It publishes once immediately, then on
// every tick until ctx is canceled.
func (s *CacheMetricsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.publish()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.publish()
		}
	}
}

func (s *CacheMetricsService) publish() {
	st := s.source.CacheStats()
	metrics.ArtworkCacheEntries.Set(float64(st.Size))
	logging.Debug().
		Int("size", st.Size).
		Int("capacity", st.Capacity).
		Int64("hits", st.Hits).
		Int64("misses", st.Misses).
		Int64("evictions", st.Evictions).
		Msg("Artwork cache stats published")
}

// String implements fmt.Stringer for logging.
func (s *CacheMetricsService) String() string {
	return "artwork-cache-metrics"
}
