// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T, mw *ChiMiddleware) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(newTestHandler(t), mw).Setup())
	t.Cleanup(srv.Close)
	return srv
}

func TestRouterSetup_Routes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/api/v1/health/live", "", http.StatusOK},
		{http.MethodGet, "/api/v1/health/ready", "", http.StatusOK},
		{http.MethodGet, "/api/v1/search?q=space", "", http.StatusOK},
		{http.MethodPost, "/api/v1/recommend", `{"title":"A"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/stats", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
		{http.MethodGet, "/api/v1/recommend", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp, err := srv.Client().Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRouterSetup_RequestIDAndSecurityHeaders(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/stats", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-ID"); got != "test-request-id" {
		t.Errorf("X-Request-ID = %q, want echo of the client value", got)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing X-Content-Type-Options")
	}
	if resp.Header.Get("X-Frame-Options") != "DENY" {
		t.Error("missing X-Frame-Options")
	}

	resp2, err := srv.Client().Get(srv.URL + "/api/v1/health/live")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.Header.Get("X-Request-ID") == "" {
		t.Error("a request ID should be generated when the client sends none")
	}
}

func TestRouterSetup_RateLimitSparesHealth(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddleware(&ChiMiddlewareConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	})
	srv := newTestServer(t, mw)

	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		resp, err := srv.Client().Get(srv.URL + "/api/v1/stats")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		statuses = append(statuses, resp.StatusCode)
	}
	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK || statuses[3] != http.StatusTooManyRequests {
		t.Errorf("statuses = %v, want [200 200 429 429]", statuses)
	}

	resp, err := srv.Client().Get(srv.URL + "/api/v1/health/live")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200 while rate limited", resp.StatusCode)
	}
}
