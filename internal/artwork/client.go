// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package artwork

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// Fetcher performs a single external lookup.
type Fetcher interface {
	Fetch(ctx context.Context, key Key) (Result, error)
}

// Ensure Client implements Fetcher
var _ Fetcher = (*Client)(nil)

// ClientConfig configures the TMDB-compatible client.
type ClientConfig struct {
	BaseURL      string
	ImageBaseURL string
	APIKey       string

	// Timeout bounds each HTTP call. Default: 5s
	Timeout time.Duration

	// RateLimitPerSecond and RateLimitBurst shape outbound traffic process-wide.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Client searches a TMDB-compatible API for movie and TV artwork.
type Client struct {
	baseURL      string
	imageBaseURL string
	apiKey       string
	httpClient   *http.Client
	limiter      *rate.Limiter
}

// searchResponse is the subset of /search/{movie,tv} the client reads.
type searchResponse struct {
	Results []struct {
		PosterPath   string `json:"poster_path"`
		BackdropPath string `json:"backdrop_path"`
	} `json:"results"`
}

// NewClient creates a client. A zero rate limit disables outbound shaping.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	limit := rate.Inf
	burst := cfg.RateLimitBurst
	if cfg.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimitPerSecond)
	}
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimSuffix(cfg.ImageBaseURL, "/"),
		apiKey:       cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Fetch searches for key and returns the first hit's images.
func (c *Client) Fetch(ctx context.Context, key Key) (Result, error) {
	if c.apiKey == "" {
		return Result{}, ErrMissingAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, fmt.Errorf("artwork rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(key), http.NoBody)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build artwork request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("artwork request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, fmt.Errorf("artwork search returned status %d: %s", resp.StatusCode, string(body))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Result{}, fmt.Errorf("failed to decode artwork response: %w", err)
	}
	if len(sr.Results) == 0 {
		return Result{Found: false}, nil
	}

	first := sr.Results[0]
	return Result{
		Artwork: Artwork{
			Poster:   c.imageURL(first.PosterPath),
			Backdrop: c.imageURL(first.BackdropPath),
		},
		Found: true,
	}, nil
}

func (c *Client) searchURL(key Key) string {
	endpoint, yearParam := "/search/movie", "year"
	if key.IsTV() {
		endpoint, yearParam = "/search/tv", "first_air_date_year"
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", strings.TrimSpace(key.Title))
	if key.Year > 0 {
		q.Set(yearParam, strconv.Itoa(key.Year))
	}
	return c.baseURL + endpoint + "?" + q.Encode()
}

func (c *Client) imageURL(path string) *string {
	if path == "" {
		return nil
	}
	u := c.imageBaseURL + "/" + strings.TrimPrefix(path, "/")
	return &u
}
