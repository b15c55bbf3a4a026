// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// RecommendService is the part of recommend.Service the handlers use.
type RecommendService interface {
	Search(query string) []recommend.SearchResult
	Recommend(ctx context.Context, title, method string, n int) (*recommend.Recommendation, error)
	Stats() recommend.Stats
}

// Ensure *recommend.Service satisfies RecommendService
var _ RecommendService = (*recommend.Service)(nil)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_recommend.go: search, recommend and stats endpoints
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	svc       RecommendService
	startTime time.Time
	ready     atomic.Bool
}

// NewHandler creates a handler around an already built service. The
// handler starts ready because the service is only constructed once the
// index is complete.
//
//	svc, _ := recommend.NewService(ctx, cat)
//	handler := api.NewHandler(svc)
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":8080", router.Setup())
func NewHandler(svc RecommendService) *Handler {
	h := &Handler{
		svc:       svc,
		startTime: time.Now(),
	}
	h.ready.Store(svc != nil)
	return h
}

// SetReady flips the readiness probe. The server marks itself not ready
// when shutdown begins so load balancers drain it first.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}
