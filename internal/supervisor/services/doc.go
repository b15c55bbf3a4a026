// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for Reelmatch components.

HTTPServerService adapts *http.Server to suture's Serve(ctx) pattern. On
cancellation it runs an optional drain hook, used to flip the readiness probe,
and then shuts the server down gracefully.

CacheMetricsService periodically publishes artwork cache statistics as
Prometheus gauges.
*/
package services
