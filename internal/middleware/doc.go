// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP instrumentation middleware.

PrometheusMetrics records api_requests_total, api_request_duration_seconds
and api_active_requests for every request it wraps. It is written against
chi: the endpoint label is the matched route pattern (for example
"/api/v1/recommend"), which keeps label cardinality bounded no matter what
paths clients send. Requests chi cannot route are labelled "unmatched".

	r := chi.NewRouter()
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
