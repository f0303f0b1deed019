// Oraclia - Consultation Marketplace Matching and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oraclia

package config

import (
	"fmt"
	"time"
)

// Config is the root service configuration.
type Config struct {
	// Server configures the HTTP listener.
	Server ServerConfig `koanf:"server"`

	// Logging configures the global logger.
	Logging LoggingConfig `koanf:"logging"`

	// Similarity configures the provider-similarity model refresh.
	Similarity SimilarityConfig `koanf:"similarity"`

	// Recommend configures the recommendation engine.
	Recommend RecommendConfig `koanf:"recommend"`

	// Behavior configures the behavior store backend.
	Behavior BehaviorConfig `koanf:"behavior"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Host is the bind address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// ReadTimeout bounds request reads.
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds response writes.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RateLimitPerMinute caps requests per client IP per minute.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`

	// CORSAllowedOrigins lists allowed CORS origins. "*" allows all.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is the minimum log level (trace..panic).
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file:line in log events.
	Caller bool `koanf:"caller"`
}

// SimilarityConfig configures the provider-similarity model.
type SimilarityConfig struct {
	// RefreshInterval is how often the supervised refresher rebuilds the
	// matrix. Registry mutations additionally invalidate it immediately.
	// Zero disables the periodic refresher; the matrix then rebuilds
	// lazily on demand only.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// RecommendConfig configures the recommendation engine.
type RecommendConfig struct {
	// MaxRecommendations caps the returned list length.
	MaxRecommendations int `koanf:"max_recommendations"`

	// CacheTTL is how long a generated list may be served from cache.
	// Zero disables caching.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// BehaviorConfig configures the behavior store backend.
type BehaviorConfig struct {
	// Backend selects the store implementation: "memory" or "badger".
	Backend string `koanf:"backend"`

	// BadgerPath is the on-disk directory for the badger backend.
	BadgerPath string `koanf:"badger_path"`
}

// Default returns a Config with all default values applied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8474,
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       15 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			RateLimitPerMinute: 300,
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Similarity: SimilarityConfig{
			RefreshInterval: 5 * time.Minute,
		},
		Recommend: RecommendConfig{
			MaxRecommendations: 10,
			CacheTTL:           30 * time.Second,
		},
		Behavior: BehaviorConfig{
			Backend:    "memory",
			BadgerPath: "/data/oraclia/behavior",
		},
	}
}

// Validate checks the configuration for values that would misbehave at
// runtime. It returns the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must not be negative")
	}
	if c.Recommend.MaxRecommendations < 1 {
		return fmt.Errorf("recommend.max_recommendations must be at least 1")
	}
	if c.Similarity.RefreshInterval < 0 {
		return fmt.Errorf("similarity.refresh_interval must not be negative")
	}
	switch c.Behavior.Backend {
	case "memory":
	case "badger":
		if c.Behavior.BadgerPath == "" {
			return fmt.Errorf("behavior.badger_path required for badger backend")
		}
	default:
		return fmt.Errorf("behavior.backend %q is not one of memory, badger", c.Behavior.Backend)
	}
	return nil
}
