// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

const (
	// DefaultSearchLimit caps autocomplete results.
	DefaultSearchLimit = 10

	// MinSearchQueryLen is the shortest query that produces results.
	MinSearchQueryLen = 2
)

// Resolver maps user-supplied titles to catalog rows.
type Resolver struct {
	cat     *catalog.Catalog
	byTitle map[string]int
}

// NewResolver indexes the catalog's lower-cased titles. When titles repeat,
// the lowest row index is kept.
func NewResolver(cat *catalog.Catalog) *Resolver {
	r := &Resolver{
		cat:     cat,
		byTitle: make(map[string]int, cat.Len()),
	}
	for i := 0; i < cat.Len(); i++ {
		t := cat.LowerTitle(i)
		if t == "" {
			continue
		}
		if _, seen := r.byTitle[t]; !seen {
			r.byTitle[t] = i
		}
	}
	return r
}

// Resolve returns the row whose title equals title, ignoring case and
// surrounding whitespace. A miss returns a *TitleNotFoundError.
func (r *Resolver) Resolve(title string) (int, error) {
	idx, ok := r.byTitle[normalizeTitle(title)]
	if !ok {
		return -1, &TitleNotFoundError{Title: title}
	}
	return idx, nil
}

// Search returns up to limit rows whose title contains query, in catalog
// order. Queries shorter than MinSearchQueryLen return nothing.
func (r *Resolver) Search(query string, limit int) []int {
	q := normalizeTitle(query)
	if len([]rune(q)) < MinSearchQueryLen {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var out []int
	for i := 0; i < r.cat.Len() && len(out) < limit; i++ {
		if strings.Contains(r.cat.LowerTitle(i), q) {
			out = append(out, i)
		}
	}
	return out
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
