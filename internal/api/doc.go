// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api exposes the recommendation service over HTTP using the chi router.

# Endpoints

	GET  /api/v1/search?q=        title autocomplete (at most 10 results)
	POST /api/v1/recommend        {"title": "...", "method": "...", "n": 10}
	GET  /api/v1/stats            catalog counts and embedding availability
	GET  /api/v1/health/live      liveness probe
	GET  /api/v1/health/ready     readiness probe
	GET  /metrics                 Prometheus metrics
	GET  /swagger/*               OpenAPI document and UI

# Response Envelope

Every JSON body uses the same envelope:

	{
	  "status": "success" | "error",
	  "data": ...,
	  "metadata": {"timestamp": "...", "query_time_ms": 3},
	  "error": {"code": "TITLE_NOT_FOUND", "message": "Title \"X\" not found"}
	}

# Error Codes

  - VALIDATION_ERROR (400): a required field is missing, e.g. "Title is required"
  - INVALID_REQUEST (400): malformed body, unknown method or n out of range
  - TITLE_NOT_FOUND (404): the title matched no catalog item
  - METHOD_NOT_ALLOWED (405)
  - INTERNAL_ERROR (500)

# Middleware

The global stack is request ID with logging context, RealIP, Recoverer and
CORS. The /api/v1 group adds per-IP rate limiting (go-chi/httprate),
security headers and Prometheus request metrics.
*/
package api
