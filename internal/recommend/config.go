// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package recommend

import (
	"fmt"
	"time"
)

// Config controls the scoring pipeline. All weights and thresholds are
// configuration, not constants; zero values are filled by DefaultConfig
// at engine construction.
type Config struct {
	Weights WeightsConfig `json:"weights" koanf:"weights"`
	Limits  LimitsConfig  `json:"limits" koanf:"limits"`
	Filters FiltersConfig `json:"filters" koanf:"filters"`
	Cache   CacheConfig   `json:"cache" koanf:"cache"`
	Index   IndexConfig   `json:"index" koanf:"index"`
}

// WeightsConfig holds the blend weights. The sign of a numeric weight
// encodes polarity: positive means higher raw values are better,
// negative means lower raw values are better.
type WeightsConfig struct {
	// Text is the share of the combined score taken by text similarity,
	// in [0,1]; the numeric score takes the remaining 1-Text.
	Text float64 `json:"text" koanf:"text"`

	// Rating weights the normalized rating score.
	Rating float64 `json:"rating" koanf:"rating"`

	// Price weights the normalized price; negative because cheaper is
	// better.
	Price float64 `json:"price" koanf:"price"`
}

// LimitsConfig bounds result counts.
type LimitsConfig struct {
	DefaultN int `json:"default_n" koanf:"default_n"`
	MaxN     int `json:"max_n" koanf:"max_n"`
}

// FiltersConfig holds default eligibility thresholds, overridable per
// request.
type FiltersConfig struct {
	// RatingCountThreshold is the strict minimum rating count: rows with
	// rating_count <= threshold are ineligible.
	RatingCountThreshold int64 `json:"rating_count_threshold" koanf:"rating_count_threshold"`

	// NewItemAgeDays classifies a row as "new" when age_days is at or
	// below it.
	NewItemAgeDays float64 `json:"new_item_age_days" koanf:"new_item_age_days"`
}

// CacheConfig controls the per-engine response cache.
type CacheConfig struct {
	Enabled    bool          `json:"enabled" koanf:"enabled"`
	TTL        time.Duration `json:"ttl" koanf:"ttl"`
	MaxEntries int           `json:"max_entries" koanf:"max_entries"`
}

// IndexConfig bounds the similarity index vocabulary by document
// frequency. Consumed when the index is fitted at startup; changes via
// the config endpoint take effect on the next fit.
type IndexConfig struct {
	// MinDocFreq drops terms appearing in fewer than this many
	// documents.
	MinDocFreq int `json:"min_doc_freq" koanf:"min_doc_freq"`

	// MaxDocFraction drops terms appearing in more than this fraction
	// of documents. Zero disables the upper bound.
	MaxDocFraction float64 `json:"max_doc_fraction" koanf:"max_doc_fraction"`
}

// DefaultConfig returns the documented defaults: text weight 0.7,
// numeric weights +0.7 rating / -0.3 price, 8 results, rating count
// threshold 20, new-item window 1500 days.
func DefaultConfig() Config {
	return Config{
		Weights: WeightsConfig{
			Text:   0.7,
			Rating: 0.7,
			Price:  -0.3,
		},
		Limits: LimitsConfig{
			DefaultN: 8,
			MaxN:     50,
		},
		Filters: FiltersConfig{
			RatingCountThreshold: 20,
			NewItemAgeDays:       1500,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1024,
		},
		Index: IndexConfig{
			MinDocFreq:     2,
			MaxDocFraction: 0.7,
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Weights.Text < 0 || c.Weights.Text > 1 {
		return fmt.Errorf("%w: text weight %v outside [0,1]", ErrInvalidConfig, c.Weights.Text)
	}
	if c.Weights.Rating == 0 && c.Weights.Price == 0 {
		return fmt.Errorf("%w: all numeric weights are zero", ErrInvalidConfig)
	}
	if c.Limits.DefaultN < 1 {
		return fmt.Errorf("%w: default_n %d < 1", ErrInvalidConfig, c.Limits.DefaultN)
	}
	if c.Limits.MaxN < c.Limits.DefaultN {
		return fmt.Errorf("%w: max_n %d < default_n %d", ErrInvalidConfig, c.Limits.MaxN, c.Limits.DefaultN)
	}
	if c.Filters.RatingCountThreshold < 0 {
		return fmt.Errorf("%w: rating_count_threshold %d < 0", ErrInvalidConfig, c.Filters.RatingCountThreshold)
	}
	if c.Filters.NewItemAgeDays < 0 {
		return fmt.Errorf("%w: new_item_age_days %v < 0", ErrInvalidConfig, c.Filters.NewItemAgeDays)
	}
	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("%w: cache ttl %v <= 0", ErrInvalidConfig, c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("%w: cache max_entries %d < 1", ErrInvalidConfig, c.Cache.MaxEntries)
		}
	}
	if c.Index.MinDocFreq < 1 {
		return fmt.Errorf("%w: index min_doc_freq %d < 1", ErrInvalidConfig, c.Index.MinDocFreq)
	}
	if c.Index.MaxDocFraction < 0 || c.Index.MaxDocFraction > 1 {
		return fmt.Errorf("%w: index max_doc_fraction %v outside [0,1]", ErrInvalidConfig, c.Index.MaxDocFraction)
	}
	return nil
}

// Clone returns a deep copy. Config has no reference fields today, but
// callers treat the result as independently mutable.
func (c Config) Clone() Config {
	return c
}
