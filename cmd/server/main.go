// Reelmatch - Content-Based Movie and TV Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/artwork"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalog", cfg.Catalog.CSVPath).
		Str("embeddings", cfg.Catalog.EmbeddingsPath).
		Bool("artwork_enabled", cfg.Artwork.Enabled).
		Msg("Starting Reelmatch")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	treeCfg := supervisor.DefaultTreeConfig()
	// the tree must outlive the HTTP drain
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout + 5*time.Second
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	svc, err := buildService(ctx, cfg, tree)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation index")
	}
	stats := svc.Stats()
	logging.Info().
		Int("titles", stats.TotalItems).
		Int("movies", stats.Movies).
		Int("tv_shows", stats.TVShows).
		Bool("embedding_available", stats.EmbeddingAvailable).
		Msg("Recommendation index ready")

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	httpSvc := services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout)
	httpSvc.OnDrain(func() { handler.SetReady(false) })
	tree.AddAPIService(httpSvc)
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, u := range unstopped {
		logging.Warn().Str("service", u.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildService loads the catalog and optional artifacts and builds the
// similarity index. Artwork enrichment, when enabled, registers its cache
// metrics publisher in the data layer.
func buildService(ctx context.Context, cfg *config.Config, tree *supervisor.SupervisorTree) (*recommend.Service, error) {
	start := time.Now()
	cat, err := catalog.LoadCSV(ctx, cfg.Catalog.CSVPath)
	if err != nil {
		return nil, err
	}
	logging.Info().
		Int("titles", cat.Len()).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	opts := []recommend.Option{recommend.WithMaxFeatures(cfg.Catalog.MaxFeatures)}

	if rows := loadEmbeddings(cfg.Catalog.EmbeddingsPath, cat.Len()); rows != nil {
		opts = append(opts, recommend.WithEmbeddings(rows))
	}

	if cfg.Artwork.Enabled {
		client := artwork.NewClient(artwork.ClientConfig{
			BaseURL:            cfg.Artwork.BaseURL,
			ImageBaseURL:       cfg.Artwork.ImageBaseURL,
			APIKey:             cfg.Artwork.APIKey,
			Timeout:            cfg.Artwork.Timeout,
			RateLimitPerSecond: cfg.Artwork.RateLimitPerSecond,
			RateLimitBurst:     cfg.Artwork.RateLimitBurst,
		})
		enricher := artwork.NewEnricher(artwork.NewCircuitBreakerClient(client), artwork.EnricherConfig{
			CacheSize:      cfg.Artwork.CacheSize,
			Timeout:        cfg.Artwork.Timeout,
			MaxConcurrency: cfg.Artwork.MaxConcurrency,
		})
		opts = append(opts, recommend.WithEnricher(enricher))
		tree.AddDataService(services.NewCacheMetricsService(enricher, services.DefaultCacheMetricsInterval))
		if cfg.Artwork.APIKey == "" {
			logging.Warn().Msg("Artwork enrichment enabled without an API key, artwork fields will be null")
		}
	}

	return recommend.NewService(ctx, cat, opts...)
}

// loadEmbeddings returns nil when the artifact is absent or unusable; the
// service then serves embedding requests from text similarity.
func loadEmbeddings(path string, rows int) [][]float64 {
	if path == "" {
		return nil
	}
	emb, err := catalog.LoadEmbeddings(path, rows)
	switch {
	case err == nil:
		logging.Info().Str("path", path).Int("rows", len(emb)).Msg("Embeddings loaded")
		return emb
	case errors.Is(err, os.ErrNotExist):
		logging.Info().Str("path", path).Msg("No embeddings artifact found, embedding similarity unavailable")
	default:
		logging.Warn().Err(err).Str("path", path).Msg("Ignoring unusable embeddings artifact")
	}
	return nil
}
