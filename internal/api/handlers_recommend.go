// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Search handles title autocomplete.
//
// @Summary Search titles
// @Description Case-insensitive substring match on titles only. Queries shorter than two characters return an empty list. At most 10 results.
// @Tags Recommend
// @Produce json
// @Param q query string true "Title fragment" minlength(2) maxlength(200)
// @Success 200 {object} APIResponse{data=[]recommend.SearchResult} "Matching titles"
// @Failure 400 {object} APIResponse "Query too long"
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := SearchRequest{Query: r.URL.Query().Get("q")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	respondSuccess(w, h.svc.Search(req.Query), start)
}

// Recommend handles similarity recommendations for one title.
//
// @Summary Recommend similar titles
// @Description Returns the n catalog items most similar to title. When similarity-embedding is requested but no embeddings are loaded, text similarity is used and fallback is true.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Recommendation request"
// @Success 200 {object} APIResponse{data=recommend.Recommendation} "Ranked recommendations"
// @Failure 400 {object} APIResponse "VALIDATION_ERROR or INVALID_REQUEST"
// @Failure 404 {object} APIResponse "TITLE_NOT_FOUND"
// @Router /recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "Request body must be a JSON object", nil)
		return
	}
	req.normalize()
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	rec, err := h.svc.Recommend(r.Context(), req.Title, req.Method, req.N)
	if err != nil {
		h.respondRecommendError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("title", sanitizeLogValue(req.Title)).
		Str("method_used", string(rec.MethodUsed)).
		Bool("fallback", rec.Fallback).
		Int("results", len(rec.Recommendations)).
		Dur("duration", time.Since(start)).
		Msg("Recommendation served")

	respondSuccess(w, rec, start)
}

func (h *Handler) respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *recommend.TitleNotFoundError
	switch {
	case errors.As(err, &notFound):
		respondError(w, r, http.StatusNotFound, ErrCodeTitleNotFound, notFound.Error(), nil)
	case errors.Is(err, recommend.ErrTitleNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeTitleNotFound, err.Error(), nil)
	case errors.Is(err, recommend.ErrInvalidRequest):
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeNotReady, "Request canceled", err)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to compute recommendations", err)
	}
}

// Stats handles catalog statistics.
//
// @Summary Catalog statistics
// @Description Item counts by type and whether embedding similarity is available.
// @Tags Recommend
// @Produce json
// @Success 200 {object} APIResponse{data=recommend.Stats} "Catalog statistics"
// @Router /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, h.svc.Stats(), time.Now())
}

// decodeJSONBody reads a size-capped JSON object into v. An empty body
// decodes to the zero value so the validator reports missing fields.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
