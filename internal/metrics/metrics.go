// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

// Package metrics defines the Prometheus instrumentation for the
// service. Collectors are registered on the default registry via
// promauto and exposed through /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendRequests counts recommendation requests by outcome:
	// ok, empty, not_found, ambiguous, index_not_ready, invalid, error.
	RecommendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "amazon_reviews",
		Subsystem: "recommend",
		Name:      "requests_total",
		Help:      "Recommendation requests by outcome.",
	}, []string{"outcome"})

	// RecommendDuration observes end-to-end scoring latency.
	RecommendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "amazon_reviews",
		Subsystem: "recommend",
		Name:      "duration_seconds",
		Help:      "Recommendation request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	// CacheHits counts response cache hits.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "amazon_reviews",
		Subsystem: "recommend",
		Name:      "cache_hits_total",
		Help:      "Response cache hits.",
	})

	// CacheMisses counts response cache misses.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "amazon_reviews",
		Subsystem: "recommend",
		Name:      "cache_misses_total",
		Help:      "Response cache misses.",
	})

	// IndexBuildDuration observes TF-IDF index fitting time.
	IndexBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "amazon_reviews",
		Subsystem: "textindex",
		Name:      "build_duration_seconds",
		Help:      "TF-IDF index build duration in seconds.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
	})

	// IndexVocabularySize tracks the fitted vocabulary size.
	IndexVocabularySize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "amazon_reviews",
		Subsystem: "textindex",
		Name:      "vocabulary_size",
		Help:      "Number of terms in the fitted TF-IDF vocabulary.",
	})

	// CatalogProducts tracks the number of loaded catalog rows.
	CatalogProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "amazon_reviews",
		Subsystem: "catalog",
		Name:      "products",
		Help:      "Number of products in the loaded catalog.",
	})

	// HTTPRequests counts API requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "amazon_reviews",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes API request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "amazon_reviews",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
)
