// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ssharm10/amazon-reviews/internal/catalog"
	"github.com/ssharm10/amazon-reviews/internal/metrics"
)

// Engine runs the scoring pipeline over a read-only catalog and an
// injected similarity provider. Safe for concurrent requests: the
// catalog and provider are read-only during scoring and config swaps
// happen under the engine lock.
type Engine struct {
	mu       sync.RWMutex
	cfg      Config
	log      zerolog.Logger
	cat      *catalog.Catalog
	provider SimilarityProvider
	cache    *responseCache
}

// NewEngine validates cfg and wires the engine. The provider is the
// init-once, read-many similarity index, passed in rather than reached
// for globally.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(cfg Config, cat *catalog.Catalog, provider SimilarityProvider, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInvalidConfig)
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: nil similarity provider", ErrInvalidConfig)
	}

	e := &Engine{
		cfg:      cfg,
		log:      logger.With().Str("component", "recommend").Logger(),
		cat:      cat,
		provider: provider,
	}
	if cfg.Cache.Enabled {
		e.cache = newResponseCache(cfg.Cache)
	}
	return e, nil
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg.Clone()
}

// UpdateConfig swaps the configuration after validation and purges the
// response cache, since cached entries embed the old weights.
func (e *Engine) UpdateConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	e.cfg = cfg
	if cfg.Cache.Enabled && e.cache == nil {
		e.cache = newResponseCache(cfg.Cache)
	}
	if !cfg.Cache.Enabled {
		e.cache = nil
	}
	e.mu.Unlock()

	if c := e.cacheRef(); c != nil {
		c.purge()
	}
	e.log.Info().Msg("engine configuration updated")
	return nil
}

func (e *Engine) cacheRef() *responseCache {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cache
}

// Ready reports whether the engine can serve requests.
func (e *Engine) Ready() bool {
	return e.provider.Ready()
}

// Recommend scores every catalog row against the query item and returns
// the ranked top-N with the new-item guarantee applied. The catalog is
// never modified; an empty Items slice with a nil error means the
// filters eliminated all candidates.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	cfg := e.Config()
	prep, err := prepareRequest(req, cfg)
	if err != nil {
		metrics.RecommendRequests.WithLabelValues("invalid").Inc()
		return nil, err
	}

	log := e.log.With().
		Str("request_id", prep.requestID).
		Str("query", prep.query).
		Logger()

	item, queryRow, err := e.cat.Resolve(prep.query)
	if err != nil {
		outcome := "not_found"
		if errors.Is(err, catalog.ErrAmbiguousTitle) {
			outcome = "ambiguous"
			log.Warn().Err(err).Msg("ambiguous query title")
		}
		metrics.RecommendRequests.WithLabelValues(outcome).Inc()
		return nil, err
	}

	if !e.provider.Ready() {
		metrics.RecommendRequests.WithLabelValues("index_not_ready").Inc()
		return nil, fmt.Errorf("%w: query %q", ErrIndexNotReady, prep.query)
	}
	indexVersion := e.provider.Version()

	cache := e.cacheRef()
	key := cacheKey(item.ID, prep.n, prep.textWeight, prep.minRatings, prep.newAgeDays, indexVersion)
	if cache != nil {
		if resp, ok := cache.get(key); ok {
			metrics.CacheHits.Inc()
			metrics.RecommendRequests.WithLabelValues("ok").Inc()
			resp.Metadata.RequestID = prep.requestID
			resp.Metadata.CacheHit = true
			resp.Metadata.LatencyMS = float64(time.Since(start).Microseconds()) / 1000
			return &resp, nil
		}
		metrics.CacheMisses.Inc()
	}

	sims, err := e.provider.Similarity(ctx, item.Text())
	if err != nil {
		metrics.RecommendRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("similarity for %q: %w", prep.query, err)
	}
	if len(sims) != e.cat.Len() {
		metrics.RecommendRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: similarity vector length %d, catalog %d", ErrIndexNotReady, len(sims), e.cat.Len())
	}

	selected := e.score(sims, item.Title, prep, cfg)

	resp := &Response{
		Items:           toResultRows(selected),
		TotalCandidates: e.cat.Len() - 1,
		Metadata: ResponseMetadata{
			RequestID:    prep.requestID,
			Query:        prep.query,
			ResolvedID:   item.ID,
			EffectiveN:   prep.n,
			IndexVersion: indexVersion,
			LatencyMS:    float64(time.Since(start).Microseconds()) / 1000,
			GeneratedAt:  time.Now().UTC(),
		},
	}

	if cache != nil {
		cache.put(key, *resp)
	}

	outcome := "ok"
	if len(resp.Items) == 0 {
		outcome = "empty"
	}
	metrics.RecommendRequests.WithLabelValues(outcome).Inc()
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())

	log.Debug().
		Int("query_row", queryRow).
		Int("results", len(resp.Items)).
		Int("index_version", indexVersion).
		Msg("recommendation served")

	return resp, nil
}

// score derives the combined score for every catalog row and applies
// the ranking stages. Normalization spans the full catalog so that the
// query parameters cannot shift another row's normalized features.
func (e *Engine) score(sims []float64, queryTitle string, prep preparedRequest, cfg Config) []candidate {
	nRows := e.cat.Len()
	ratings := make([]float64, nRows)
	prices := make([]float64, nRows)
	for i := 0; i < nRows; i++ {
		p := e.cat.At(i)
		ratings[i] = p.RatingScore
		prices[i] = p.Price
	}

	normRatings := minMaxNormalize(ratings, cfg.Weights.Rating)
	normPrices := minMaxNormalize(prices, cfg.Weights.Price)

	cands := make([]candidate, nRows)
	for i := 0; i < nRows; i++ {
		p := e.cat.At(i)
		numeric := cfg.Weights.Rating*normRatings[i] + cfg.Weights.Price*normPrices[i]
		combined := prep.textWeight*sims[i] + (1-prep.textWeight)*numeric
		cands[i] = candidate{
			row:         i,
			title:       p.Title,
			combined:    round2(combined),
			ratingScore: round2(p.RatingScore),
			ratingCount: p.RatingCount,
			ageDays:     p.AgeDays,
		}
	}

	return selectTop(cands, queryTitle, prep.minRatings, prep.newAgeDays, prep.n)
}

// preparedRequest is a request with all defaults applied.
type preparedRequest struct {
	query      string
	requestID  string
	n          int
	textWeight float64
	minRatings int64
	newAgeDays float64
}

func prepareRequest(req Request, cfg Config) (preparedRequest, error) {
	if req.Query == "" {
		return preparedRequest{}, fmt.Errorf("%w: empty query", ErrInvalidRequest)
	}

	prep := preparedRequest{
		query:      req.Query,
		requestID:  req.RequestID,
		n:          req.N,
		textWeight: cfg.Weights.Text,
		minRatings: cfg.Filters.RatingCountThreshold,
		newAgeDays: cfg.Filters.NewItemAgeDays,
	}
	if prep.requestID == "" {
		prep.requestID = uuid.NewString()
	}
	if prep.n == 0 {
		prep.n = cfg.Limits.DefaultN
	}
	if prep.n < 1 {
		return preparedRequest{}, fmt.Errorf("%w: n %d < 1", ErrInvalidRequest, prep.n)
	}
	if prep.n > cfg.Limits.MaxN {
		prep.n = cfg.Limits.MaxN
	}
	if req.TextWeight != nil {
		if *req.TextWeight < 0 || *req.TextWeight > 1 {
			return preparedRequest{}, fmt.Errorf("%w: text_weight %v outside [0,1]", ErrInvalidRequest, *req.TextWeight)
		}
		prep.textWeight = *req.TextWeight
	}
	if req.RatingCountThreshold != nil {
		if *req.RatingCountThreshold < 0 {
			return preparedRequest{}, fmt.Errorf("%w: rating_count_threshold %d < 0", ErrInvalidRequest, *req.RatingCountThreshold)
		}
		prep.minRatings = *req.RatingCountThreshold
	}
	if req.NewItemAgeDays != nil {
		if *req.NewItemAgeDays < 0 {
			return preparedRequest{}, fmt.Errorf("%w: new_item_age_days %v < 0", ErrInvalidRequest, *req.NewItemAgeDays)
		}
		prep.newAgeDays = *req.NewItemAgeDays
	}
	return prep, nil
}

func toResultRows(cands []candidate) []ResultRow {
	rows := make([]ResultRow, len(cands))
	for i, c := range cands {
		rows[i] = ResultRow{
			Title:         c.title,
			CombinedScore: c.combined,
			RatingScore:   c.ratingScore,
			RatingCount:   c.ratingCount,
			AgeDays:       c.ageDays,
		}
	}
	return rows
}

// round2 rounds to 2 decimal places; ranking ties break after rounding.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
