// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateArtwork(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.CSVPath) == "" {
		return fmt.Errorf("CATALOG_CSV_PATH is required")
	}
	if c.Catalog.MaxFeatures < 1 {
		return fmt.Errorf("TFIDF_MAX_FEATURES must be at least 1, got %d", c.Catalog.MaxFeatures)
	}
	return nil
}

// validateArtwork only checks shape. A missing API key is allowed: lookups
// then degrade to "no artwork" instead of failing startup.
func (c *Config) validateArtwork() error {
	if !c.Artwork.Enabled {
		return nil
	}
	u, err := url.Parse(c.Artwork.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("TMDB_BASE_URL must be an absolute http(s) URL, got %q", c.Artwork.BaseURL)
	}
	if c.Artwork.Timeout <= 0 {
		return fmt.Errorf("ARTWORK_TIMEOUT must be positive, got %v", c.Artwork.Timeout)
	}
	if c.Artwork.CacheSize < 1 {
		return fmt.Errorf("ARTWORK_CACHE_SIZE must be at least 1, got %d", c.Artwork.CacheSize)
	}
	if c.Artwork.RateLimitPerSecond <= 0 {
		return fmt.Errorf("ARTWORK_RATE_LIMIT_PER_SECOND must be positive, got %v", c.Artwork.RateLimitPerSecond)
	}
	if c.Artwork.MaxConcurrency < 1 {
		return fmt.Errorf("ARTWORK_MAX_CONCURRENCY must be at least 1, got %d", c.Artwork.MaxConcurrency)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
