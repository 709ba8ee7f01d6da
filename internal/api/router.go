// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssharm10/amazon-reviews/internal/metrics"
)

// RouterConfig holds the middleware settings the router needs.
type RouterConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
	CORSOrigins       []string
}

// NewRouter assembles the chi router: request id, real ip, panic
// recovery, CORS, per-IP rate limiting, Prometheus instrumentation,
// then the versioned API routes and /metrics.
func NewRouter(h *Handlers, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
	r.Use(instrument)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			r.Get("/live", h.handleHealthLive)
			r.Get("/ready", h.handleHealthReady)
		})

		r.Get("/recommendations", h.handleRecommendations)
		r.Route("/recommendations/config", func(r chi.Router) {
			r.Get("/", h.handleGetConfig)
			r.Put("/", h.handlePutConfig)
		})

		r.Get("/products", h.handleProducts)
		r.Get("/products/{id}", h.handleProductByID)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// instrument records per-route request counts and latency.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
