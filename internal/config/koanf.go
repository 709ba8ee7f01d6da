// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ssharm10/amazon-reviews/internal/logging"
)

// envPrefix namespaces the service's environment variables.
const envPrefix = "AMZREV_"

// envKeyMap maps environment variable names to koanf config paths.
// Only mapped variables are honored; anything else under the prefix is
// ignored rather than guessed at.
var envKeyMap = map[string]string{
	"AMZREV_SERVER_HOST":                      "server.host",
	"AMZREV_SERVER_PORT":                      "server.port",
	"AMZREV_SERVER_READ_TIMEOUT":              "server.read_timeout",
	"AMZREV_SERVER_WRITE_TIMEOUT":             "server.write_timeout",
	"AMZREV_SERVER_SHUTDOWN_TIMEOUT":          "server.shutdown_timeout",
	"AMZREV_CATALOG_PATH":                     "catalog.path",
	"AMZREV_CATALOG_RECHECK_INTERVAL":         "catalog.recheck_interval",
	"AMZREV_LOG_LEVEL":                        "logging.level",
	"AMZREV_LOG_FORMAT":                       "logging.format",
	"AMZREV_LOG_CALLER":                       "logging.caller",
	"AMZREV_API_RATE_LIMIT_REQUESTS":          "api.rate_limit_requests",
	"AMZREV_API_RATE_LIMIT_WINDOW":            "api.rate_limit_window",
	"AMZREV_API_CORS_ORIGINS":                 "api.cors_origins",
	"AMZREV_RECOMMEND_TEXT_WEIGHT":            "recommend.weights.text",
	"AMZREV_RECOMMEND_RATING_WEIGHT":          "recommend.weights.rating",
	"AMZREV_RECOMMEND_PRICE_WEIGHT":           "recommend.weights.price",
	"AMZREV_RECOMMEND_DEFAULT_N":              "recommend.limits.default_n",
	"AMZREV_RECOMMEND_MAX_N":                  "recommend.limits.max_n",
	"AMZREV_RECOMMEND_RATING_COUNT_MIN":       "recommend.filters.rating_count_threshold",
	"AMZREV_RECOMMEND_NEW_ITEM_AGE_DAYS":      "recommend.filters.new_item_age_days",
	"AMZREV_RECOMMEND_CACHE_ENABLED":          "recommend.cache.enabled",
	"AMZREV_RECOMMEND_CACHE_TTL":              "recommend.cache.ttl",
	"AMZREV_RECOMMEND_CACHE_MAX_ENTRIES":      "recommend.cache.max_entries",
	"AMZREV_RECOMMEND_INDEX_MIN_DOC_FREQ":     "recommend.index.min_doc_freq",
	"AMZREV_RECOMMEND_INDEX_MAX_DOC_FRACTION": "recommend.index.max_doc_fraction",
}

// Load assembles the configuration: struct defaults, then the YAML file
// at path (or CONFIG_PATH, or nothing), then environment variables.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("config file %s: %w", path, err)
			}
			logging.Info().Str("path", path).Msg("loaded config file")
		} else {
			logging.Warn().Str("path", path).Msg("config file not found, using defaults")
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return envKeyMap[s] // unmapped vars translate to "" and are dropped
	}), nil); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config unmarshal: %w", err)
	}

	// Comma-separated env values for slice fields arrive as one string.
	if raw, ok := k.Get("api.cors_origins").(string); ok {
		parts := strings.Split(raw, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.API.CORSOrigins = origins
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
