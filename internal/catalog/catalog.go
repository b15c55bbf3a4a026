// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"strings"
)

// Catalog is the read-only item table. It is safe for concurrent use
// because nothing mutates it after New returns.
type Catalog struct {
	items       []Item
	blobs       []string
	lowerTitles []string
	movies      int
	shows       int
}

// New copies items, assigns row indices in order and derives text blobs.
func New(items []Item) *Catalog {
	c := &Catalog{
		items:       make([]Item, len(items)),
		blobs:       make([]string, len(items)),
		lowerTitles: make([]string, len(items)),
	}
	for i := range items {
		it := items[i]
		it.Index = i
		c.items[i] = it
		c.blobs[i] = TextBlob(&it)
		c.lowerTitles[i] = strings.ToLower(strings.TrimSpace(it.Title))

		switch it.Type {
		case MediaMovie:
			c.movies++
		case MediaTVShow:
			c.shows++
		}
	}
	return c
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the item at row i. It panics on an out-of-range index,
// like a slice access.
func (c *Catalog) Item(i int) Item {
	return c.items[i]
}

// TextBlobs returns the per-row vectorizer corpus. Callers must not modify it.
func (c *Catalog) TextBlobs() []string {
	return c.blobs
}

// LowerTitle returns the trimmed, lower-cased title of row i.
func (c *Catalog) LowerTitle(i int) string {
	return c.lowerTitles[i]
}

// MovieCount returns how many items are movies.
func (c *Catalog) MovieCount() int {
	return c.movies
}

// ShowCount returns how many items are TV shows.
func (c *Catalog) ShowCount() int {
	return c.shows
}
