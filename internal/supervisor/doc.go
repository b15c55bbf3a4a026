// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor provides process supervision for Reelmatch using suture v4.

Long-running services are organized into a small tree so that a failing
background task cannot take the HTTP API down with it:

	RootSupervisor ("reelmatch")
	├── DataSupervisor ("data-layer")
	│   └── CacheMetricsService (if artwork enrichment is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with exponential backoff. Each layer counts
failures independently. Cancelling the root context shuts the tree down, and
UnstoppedServiceReport lists services that did not stop within the timeout.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, 30*time.Second))
	errCh := tree.ServeBackground(ctx)

Supervisor events are logged through sutureslog over the zerolog-backed slog
handler from the logging package.
*/
package supervisor
