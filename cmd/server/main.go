// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

// Command server runs the recommendation API: it loads the product
// catalog, fits the TF-IDF similarity index under a supervisor, and
// serves recommendations over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ssharm10/amazon-reviews/internal/api"
	"github.com/ssharm10/amazon-reviews/internal/catalog"
	"github.com/ssharm10/amazon-reviews/internal/config"
	"github.com/ssharm10/amazon-reviews/internal/logging"
	"github.com/ssharm10/amazon-reviews/internal/metrics"
	"github.com/ssharm10/amazon-reviews/internal/recommend"
	"github.com/ssharm10/amazon-reviews/internal/supervisor"
	"github.com/ssharm10/amazon-reviews/internal/textindex"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (also CONFIG_PATH)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal().Err(err).Msg("configuration failed")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg config.Config) error {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	metrics.CatalogProducts.Set(float64(cat.Len()))
	logging.Info().
		Int("products", cat.Len()).
		Str("version", cat.Version()[:12]).
		Msg("catalog loaded")

	index := textindex.New(textindex.Config{
		MinDocFreq:     cfg.Recommend.Index.MinDocFreq,
		MaxDocFraction: cfg.Recommend.Index.MaxDocFraction,
	})

	engine, err := recommend.NewEngine(cfg.Recommend, cat, index, logging.Logger())
	if err != nil {
		return err
	}

	router := api.NewRouter(api.NewHandlers(engine, cat), api.RouterConfig{
		RateLimitRequests: cfg.API.RateLimitRequests,
		RateLimitWindow:   cfg.API.RateLimitWindow,
		CORSOrigins:       cfg.API.CORSOrigins,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree()
	tree.Add(supervisor.NewIndexService(index, cat, cfg.Catalog.RecheckInterval))
	tree.Add(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("starting supervisor tree")
	return tree.Serve(ctx)
}
