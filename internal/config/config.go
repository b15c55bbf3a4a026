// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package config loads Reelmatch configuration from defaults, an optional YAML
// file, and environment variables (highest priority), using koanf v2.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Artwork  ArtworkConfig  `koanf:"artwork"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig points at the catalog and the optional embedding artifact.
type CatalogConfig struct {
	// CSVPath is the catalog file with columns
	// title,type,listed_in,release_year,description,cast,director,rating,duration.
	CSVPath string `koanf:"csv_path"`

	// EmbeddingsPath is an optional .npy matrix aligned row-for-row with the catalog.
	// Missing file means embedding similarity is unavailable.
	EmbeddingsPath string `koanf:"embeddings_path"`

	// MaxFeatures caps the TF-IDF vocabulary.
	// Default: 10000
	MaxFeatures int `koanf:"max_features"`
}

// ArtworkConfig configures the poster/backdrop lookup service (TMDB-compatible).
//
// Environment Variables:
//   - ARTWORK_ENABLED: enable enrichment (default: true)
//   - TMDB_API_KEY: API key; without it every lookup degrades to no artwork
//   - ARTWORK_TIMEOUT: per-call timeout (default: 5s)
//   - ARTWORK_CACHE_SIZE: LRU capacity (default: 1000)
type ArtworkConfig struct {
	Enabled            bool          `koanf:"enabled"`
	BaseURL            string        `koanf:"base_url"`
	ImageBaseURL       string        `koanf:"image_base_url"`
	APIKey             string        `koanf:"api_key"`
	Timeout            time.Duration `koanf:"timeout"`
	CacheSize          int           `koanf:"cache_size"`
	RateLimitPerSecond float64       `koanf:"rate_limit_per_second"`
	RateLimitBurst     int           `koanf:"rate_limit_burst"`
	MaxConcurrency     int           `koanf:"max_concurrency"`
}

// SecurityConfig holds inbound HTTP protections.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	// Level: trace, debug, info, warn, error. Default: info
	Level string `koanf:"level"`

	// Format: json or console. Default: json
	Format string `koanf:"format"`

	Caller bool `koanf:"caller"`
}

// Load reads configuration with precedence ENV > file > defaults.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
