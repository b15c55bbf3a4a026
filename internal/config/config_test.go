// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Catalog.MaxFeatures != 10000 {
		t.Errorf("Catalog.MaxFeatures = %d, want 10000", cfg.Catalog.MaxFeatures)
	}
	if cfg.Artwork.Timeout != 5*time.Second {
		t.Errorf("Artwork.Timeout = %v, want 5s", cfg.Artwork.Timeout)
	}
	if cfg.Artwork.CacheSize != 1000 {
		t.Errorf("Artwork.CacheSize = %d, want 1000", cfg.Artwork.CacheSize)
	}
	if cfg.Artwork.APIKey != "" {
		t.Errorf("Artwork.APIKey should be empty by default, got %q", cfg.Artwork.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "8088")
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("ARTWORK_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 8088 {
		t.Errorf("Server.Port = %d, want 8088", cfg.Server.Port)
	}
	if cfg.Artwork.APIKey != "secret" {
		t.Errorf("Artwork.APIKey = %q, want secret", cfg.Artwork.APIKey)
	}
	if cfg.Artwork.Timeout != 2*time.Second {
		t.Errorf("Artwork.Timeout = %v, want 2s", cfg.Artwork.Timeout)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := strings.Join([]string{
		"server:",
		"  port: 9000",
		"catalog:",
		"  csv_path: /data/titles.csv",
		"  max_features: 500",
	}, "\n")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("env should win over file: Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Catalog.CSVPath != "/data/titles.csv" {
		t.Errorf("Catalog.CSVPath = %q, want /data/titles.csv", cfg.Catalog.CSVPath)
	}
	if cfg.Catalog.MaxFeatures != 500 {
		t.Errorf("Catalog.MaxFeatures = %d, want 500", cfg.Catalog.MaxFeatures)
	}
	if cfg.Artwork.CacheSize != 1000 {
		t.Errorf("unset values keep defaults: Artwork.CacheSize = %d", cfg.Artwork.CacheSize)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"TMDB_API_KEY", "artwork.api_key"},
		{"CATALOG_CSV_PATH", "catalog.csv_path"},
		{"PORT", "server.port"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := envTransformFunc(tt.in); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"empty csv path", func(c *Config) { c.Catalog.CSVPath = " " }, "CATALOG_CSV_PATH"},
		{"zero max features", func(c *Config) { c.Catalog.MaxFeatures = 0 }, "TFIDF_MAX_FEATURES"},
		{"relative artwork url", func(c *Config) { c.Artwork.BaseURL = "tmdb" }, "TMDB_BASE_URL"},
		{"artwork disabled skips url", func(c *Config) { c.Artwork.Enabled = false; c.Artwork.BaseURL = "" }, ""},
		{"zero cache", func(c *Config) { c.Artwork.CacheSize = 0 }, "ARTWORK_CACHE_SIZE"},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQS"},
		{"rate limit disabled", func(c *Config) { c.Security.RateLimitDisabled = true; c.Security.RateLimitReqs = 0 }, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 5000}
	if got := s.Addr(); got != "127.0.0.1:5000" {
		t.Errorf("Addr() = %q", got)
	}
}
