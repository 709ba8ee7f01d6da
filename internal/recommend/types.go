// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

// Package recommend implements the content-based recommendation engine:
// text similarity from a fitted vector index blended with min-max
// normalized numeric signals, ranked with a guaranteed slot for a "new"
// product. The pipeline is pure with respect to its inputs; all derived
// columns live in request-scoped candidate slices.
package recommend

import (
	"context"
	"time"
)

// SimilarityProvider is the text index capability the engine consumes.
// Implementations precompute a fitted index keyed by catalog identity;
// the engine only requires deterministic, catalog-row-aligned vectors.
type SimilarityProvider interface {
	// Ready reports whether the index is fitted and serving.
	Ready() bool

	// Version changes whenever the index is refitted; response caches
	// key on it.
	Version() int

	// Similarity returns one score per catalog row, in [-1,1], aligned
	// to catalog row order.
	Similarity(ctx context.Context, queryText string) ([]float64, error)
}

// Request asks for alternatives to one query item. Query resolves by
// product id first, then by exact title. Optional fields fall back to
// the engine configuration when zero/nil.
type Request struct {
	Query string `json:"query"`

	// N is the result count; 0 means the configured default.
	N int `json:"n"`

	// TextWeight overrides the configured text/numeric blend when set.
	TextWeight *float64 `json:"text_weight,omitempty"`

	// RatingCountThreshold overrides the configured eligibility floor.
	RatingCountThreshold *int64 `json:"rating_count_threshold,omitempty"`

	// NewItemAgeDays overrides the configured freshness window.
	NewItemAgeDays *float64 `json:"new_item_age_days,omitempty"`

	// RequestID correlates logs; generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// ResultRow is one recommended product. Scores are rounded to 2
// decimals before ranking, so ties are broken post-rounding.
type ResultRow struct {
	Title         string  `json:"product_title"`
	CombinedScore float64 `json:"combined_score"`
	RatingScore   float64 `json:"bayesian_rating"`
	RatingCount   int64   `json:"rating_number"`
	AgeDays       float64 `json:"product_age_days"`
}

// Response is an ordered result set plus request metadata. Zero rows is
// a valid response, not an error: it means the filters eliminated every
// candidate.
type Response struct {
	Items           []ResultRow      `json:"items"`
	TotalCandidates int              `json:"total_candidates"`
	Metadata        ResponseMetadata `json:"metadata"`
}

// ResponseMetadata carries provenance for observability.
type ResponseMetadata struct {
	RequestID  string `json:"request_id"`
	Query      string `json:"query"`
	ResolvedID string `json:"resolved_id"`

	// EffectiveN is the result cap actually applied: the requested n
	// after defaulting and clamping to the configured maximum.
	EffectiveN int `json:"effective_n"`

	IndexVersion int       `json:"index_version"`
	LatencyMS    float64   `json:"latency_ms"`
	CacheHit     bool      `json:"cache_hit"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// candidate is the request-scoped scored row. Derived values never
// touch the catalog's stored form.
type candidate struct {
	row         int
	title       string
	combined    float64
	ratingScore float64
	ratingCount int64
	ageDays     float64
}
