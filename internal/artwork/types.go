// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package artwork enriches recommendation results with poster and backdrop
// URLs from a TMDB-compatible lookup service.
//
// Enrichment is best-effort. Lookup never returns an error: any failure
// (timeout, non-2xx, bad payload, missing API key, open circuit) is logged and
// yields an empty Artwork. Successful answers, including "not found", are
// memoized in a bounded LRU; failures are never cached so the next request
// retries.
package artwork

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrEnrichmentUnavailable wraps every lookup failure. It is logged, never
	// returned to callers of Lookup.
	ErrEnrichmentUnavailable = errors.New("artwork enrichment unavailable")

	// ErrMissingAPIKey means the client was configured without credentials.
	ErrMissingAPIKey = errors.New("artwork api key not configured")
)

// Key identifies one lookup.
type Key struct {
	Title     string
	MediaType string
	// Year is 0 when unknown.
	Year int
}

// IsTV reports whether the key should be searched as a TV show.
func (k Key) IsTV() bool {
	switch strings.ToLower(strings.Join(strings.Fields(k.MediaType), " ")) {
	case "tv show", "tvshow", "tv", "show", "series":
		return true
	default:
		return false
	}
}

// CacheKey normalizes the key so case and padding differences share an entry.
func (k Key) CacheKey() string {
	mt := "movie"
	if k.IsTV() {
		mt = "tv"
	}
	return strings.ToLower(strings.TrimSpace(k.Title)) + "|" + mt + "|" + strconv.Itoa(k.Year)
}

// Artwork holds image URLs; nil means absent.
type Artwork struct {
	Poster   *string `json:"poster"`
	Backdrop *string `json:"backdrop"`
}

// Result is a successful lookup. Found is false when the service answered
// but had no match; that outcome is cached like any other.
type Result struct {
	Artwork
	Found bool
}
