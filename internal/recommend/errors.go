// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"

	"github.com/tomtom215/reelmatch/internal/recommend/vectorize"
)

var (
	// ErrEmptyCorpus is fatal at startup: the catalog has nothing to index.
	ErrEmptyCorpus = vectorize.ErrEmptyCorpus

	// ErrTitleNotFound means the query title matched no catalog row.
	ErrTitleNotFound = errors.New("title not found")

	// ErrInvalidRequest covers malformed arguments such as a non-positive n
	// or an unknown similarity method.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderUnavailable is returned by a provider whose matrix was never built.
	ErrProviderUnavailable = errors.New("similarity provider unavailable")
)

// TitleNotFoundError carries the title that failed to resolve.
type TitleNotFoundError struct {
	Title string
}

func (e *TitleNotFoundError) Error() string {
	return `Title "` + e.Title + `" not found`
}

// Unwrap lets errors.Is(err, ErrTitleNotFound) match.
func (e *TitleNotFoundError) Unwrap() error {
	return ErrTitleNotFound
}
