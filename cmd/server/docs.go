// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// @title Reelmatch API
// @version 1.0
// @description Content-based movie and TV recommendations over a fixed catalog.
// @description
// @description ## Similarity methods
// @description
// @description - **similarity-text**: TF-IDF over genres, description, cast and director (aliases: `tfidf`, `text`)
// @description - **similarity-embedding**: cosine similarity over precomputed sentence embeddings (aliases: `embedding`, `embeddings`)
// @description
// @description Requesting `similarity-embedding` when no embeddings artifact is loaded is served by
// @description text similarity; the response reports `method_used: "similarity-text"` and `fallback: true`.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on search, recommend and stats.
// @description Health probes are not rate limited.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "TITLE_NOT_FOUND", "message": "..."},
// @description   "metadata": {"timestamp": "2026-01-01T00:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommend
// @tag.description Title search, recommendations and index statistics
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
