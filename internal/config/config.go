// Amazon Reviews - Product Catalog Analytics and Recommendations
// Copyright 2026 Soniya S. (ssharm10)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ssharm10/amazon-reviews

// Package config loads service configuration with koanf, layering
// struct defaults, an optional YAML file and environment variables (in
// that order of increasing precedence).
package config

import (
	"fmt"
	"time"

	"github.com/ssharm10/amazon-reviews/internal/recommend"
)

// Config is the root service configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Recommend recommend.Config `koanf:"recommend"`
	Logging   LoggingConfig    `koanf:"logging"`
	API       APIConfig        `koanf:"api"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig locates the catalog snapshot.
type CatalogConfig struct {
	// Path is the JSON catalog snapshot produced by the data
	// preparation pipeline.
	Path string `koanf:"path"`

	// RecheckInterval is how often the index service verifies the
	// similarity index is still fitted, re-fitting it from the loaded
	// catalog when it is not. The catalog file itself is read once at
	// startup; changing it requires a restart. Zero disables the check.
	RecheckInterval time.Duration `koanf:"recheck_interval"`
}

// LoggingConfig mirrors logging.Config for the koanf layer.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// APIConfig holds HTTP middleware settings.
type APIConfig struct {
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Default returns the built-in defaults, the bottom configuration layer.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Path:            "data/catalog.json",
			RecheckInterval: 5 * time.Minute,
		},
		Recommend: recommend.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		API: APIConfig{
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			CORSOrigins:       []string{"*"},
		},
	}
}

// Validate checks the assembled configuration.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server port %d out of range", c.Server.Port)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("config: catalog path is required")
	}
	if c.API.RateLimitRequests < 1 {
		return fmt.Errorf("config: rate_limit_requests %d < 1", c.API.RateLimitRequests)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("config: rate_limit_window %v <= 0", c.API.RateLimitWindow)
	}
	if err := c.Recommend.Validate(); err != nil {
		return err
	}
	return nil
}
