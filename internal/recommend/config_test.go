// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package recommend

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "text weight above 1", mutate: func(c *Config) { c.Weights.Text = 1.1 }},
		{name: "text weight below 0", mutate: func(c *Config) { c.Weights.Text = -0.1 }},
		{name: "all numeric weights zero", mutate: func(c *Config) { c.Weights.Rating = 0; c.Weights.Price = 0 }},
		{name: "default_n below 1", mutate: func(c *Config) { c.Limits.DefaultN = 0 }},
		{name: "max_n below default_n", mutate: func(c *Config) { c.Limits.MaxN = c.Limits.DefaultN - 1 }},
		{name: "negative threshold", mutate: func(c *Config) { c.Filters.RatingCountThreshold = -1 }},
		{name: "negative age window", mutate: func(c *Config) { c.Filters.NewItemAgeDays = -1 }},
		{name: "cache enabled without ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }},
		{name: "cache enabled without capacity", mutate: func(c *Config) { c.Cache.MaxEntries = 0 }},
		{name: "index min_doc_freq below 1", mutate: func(c *Config) { c.Index.MinDocFreq = 0 }},
		{name: "index max_doc_fraction above 1", mutate: func(c *Config) { c.Index.MaxDocFraction = 1.5 }},
		{name: "index max_doc_fraction negative", mutate: func(c *Config) { c.Index.MaxDocFraction = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Weights.Text = 0.1
	if cfg.Weights.Text == 0.1 {
		t.Error("mutating the clone changed the original")
	}
}
