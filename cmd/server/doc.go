// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch loads a catalog of movies and TV shows, builds TF-IDF and optional
embedding similarity matrices at startup, and serves content-based
recommendations over a JSON HTTP API.

# Startup

 1. Configuration: Koanf v2 with defaults, optional config file, environment
 2. Logging: zerolog with JSON or console output
 3. Catalog: CSV read through DuckDB
 4. Embeddings: optional .npy artifact aligned with the catalog
 5. Index: TF-IDF vocabulary and similarity matrices
 6. Supervisor tree: suture v4 with the HTTP server in the api layer

The index is built before the listener opens, so the readiness probe is true
as soon as requests are accepted. On SIGINT or SIGTERM the readiness probe
flips to false and the server drains within SHUTDOWN_TIMEOUT.

# Example

	export CATALOG_CSV_PATH=./data/netflix_titles.csv
	export CATALOG_EMBEDDINGS_PATH=./data/embeddings.npy
	export ARTWORK_ENABLED=true
	export TMDB_API_KEY=your-tmdb-key
	./reelmatch

	curl -s -X POST localhost:5000/api/v1/recommend \
	  -d '{"title":"Inception","method":"embedding","n":5}'
*/
package main
