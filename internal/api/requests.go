// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"strings"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// MaxRecommendations bounds n on the HTTP surface.
const MaxRecommendations = 100

// maxRequestBody caps the recommend request body.
const maxRequestBody = 64 << 10

// RecommendRequest is the body of POST /api/v1/recommend.
type RecommendRequest struct {
	// Title of the catalog item to find neighbours for (case-insensitive)
	Title string `json:"title" validate:"required" example:"Stranger Things"`

	// Method is similarity-text (default) or similarity-embedding.
	// The aliases tfidf and embedding are accepted.
	Method string `json:"method,omitempty" validate:"omitempty,similarity_method" example:"similarity-text"`

	// N is the number of recommendations. 0 or omitted means 10.
	N int `json:"n,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
}

// normalize trims free-text fields before validation so a blank title
// counts as missing.
func (r *RecommendRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Method = strings.TrimSpace(r.Method)
}

// SearchRequest holds the query string of GET /api/v1/search.
type SearchRequest struct {
	Query string `validate:"max=200"`
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or an APIError if validation fails.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}
