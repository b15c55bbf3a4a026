// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog holds the immutable item table the recommender indexes.
//
// Items are assigned a stable row index in load order. Each item also gets a
// derived text blob (director, cast, genres, description, title, lower-cased)
// which is the only input to the TF-IDF vectorizer.
package catalog

import (
	"strings"
)

// MediaType distinguishes movies from shows.
type MediaType string

const (
	MediaMovie  MediaType = "Movie"
	MediaTVShow MediaType = "TV Show"
)

// ParseMediaType normalizes the spellings seen in catalog exports.
// Unknown values are kept verbatim so they still round-trip to clients.
func ParseMediaType(s string) MediaType {
	switch strings.ToLower(strings.Join(strings.Fields(s), " ")) {
	case "movie", "film":
		return MediaMovie
	case "tv show", "tvshow", "tv", "show", "series":
		return MediaTVShow
	default:
		return MediaType(strings.TrimSpace(s))
	}
}

// Item is one catalog entry.
type Item struct {
	// Index is the row position assigned at load; it never changes.
	Index int `json:"-"`

	Title string    `json:"title"`
	Type  MediaType `json:"type"`

	// ListedIn is the comma separated genre list.
	ListedIn string `json:"listed_in"`

	// ReleaseYear is nil when the source row had no usable year.
	ReleaseYear *int `json:"release_year"`

	Description string `json:"description"`
	Cast        string `json:"cast"`
	Director    string `json:"director"`
	Rating      string `json:"rating"`
	Duration    string `json:"duration"`
}

// Year returns the release year or 0 when unknown.
func (it Item) Year() int {
	if it.ReleaseYear == nil {
		return 0
	}
	return *it.ReleaseYear
}

// TextBlob builds the vectorizer input: director, cast, genres, description
// and title joined by single spaces and lower-cased. Empty fields still
// contribute their separator so the output is deterministic.
func TextBlob(it *Item) string {
	return strings.ToLower(strings.Join([]string{
		it.Director,
		it.Cast,
		it.ListedIn,
		it.Description,
		it.Title,
	}, " "))
}

// IntPtr is a convenience for building items with a release year.
func IntPtr(v int) *int {
	return &v
}
