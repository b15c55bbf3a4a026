// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built lazily by GetValidator and reused for
// every request, so struct reflection is cached after the first call.
//
// # Usage
//
//	type RecommendRequest struct {
//	    Title  string `json:"title" validate:"required"`
//	    Method string `json:"method" validate:"omitempty,similarity_method"`
//	    N      int    `json:"n" validate:"omitempty,min=1,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - similarity_method: accepts the names recommend.ParseMethod understands
//     ("similarity-text", "similarity-embedding" and the aliases "tfidf",
//     "text", "embedding", "embeddings")
//
// # Error Codes
//
// ToAPIError reports VALIDATION_ERROR when a required field is missing
// and INVALID_REQUEST when a field is present but out of range or not one
// of the allowed values. Messages name the struct field:
//
//	required -> "Title is required"
//	max=100  -> "N must be at most 100"
//	min=1    -> "N must be at least 1"
package validation
