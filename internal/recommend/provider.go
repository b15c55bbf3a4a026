// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/reelmatch/internal/recommend/similarity"
)

// Method names a similarity source.
type Method string

const (
	MethodText      Method = "similarity-text"
	MethodEmbedding Method = "similarity-embedding"
)

// ParseMethod accepts the canonical names plus the legacy aliases "tfidf"
// and "embedding". An empty string selects MethodText.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(MethodText), "tfidf", "text":
		return MethodText, nil
	case string(MethodEmbedding), "embedding", "embeddings":
		return MethodEmbedding, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrInvalidRequest, s)
	}
}

// SimilarityProvider ranks neighbours of a catalog row for one method.
type SimilarityProvider interface {
	Method() Method
	Available() bool
	TopN(index, n int) ([]Neighbor, error)
}

// matrixProvider serves rankings from a built similarity matrix.
type matrixProvider struct {
	method Method
	matrix *similarity.Matrix
}

func newMatrixProvider(method Method, m *similarity.Matrix) *matrixProvider {
	return &matrixProvider{method: method, matrix: m}
}

func (p *matrixProvider) Method() Method  { return p.method }
func (p *matrixProvider) Available() bool { return true }

func (p *matrixProvider) TopN(index, n int) ([]Neighbor, error) {
	return TopN(p.matrix, index, n)
}

// unavailableProvider stands in for a method whose matrix was never built.
type unavailableProvider struct {
	method Method
	reason string
}

func (p unavailableProvider) Method() Method  { return p.method }
func (p unavailableProvider) Available() bool { return false }

func (p unavailableProvider) TopN(int, int) ([]Neighbor, error) {
	return nil, fmt.Errorf("%w: %s: %s", ErrProviderUnavailable, p.method, p.reason)
}
