// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Google    GoogleConfig    `koanf:"google"`
	OpenAI    OpenAIConfig    `koanf:"openai"`
	Weather   WeatherConfig   `koanf:"weather"`
	Cache     CacheConfig     `koanf:"cache"`
	Recommend RecommendConfig `koanf:"recommend"`
	Scanner   ScannerConfig   `koanf:"scanner"`
	Timeouts  TimeoutsConfig  `koanf:"timeouts"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"` // must exceed timeouts.plan_request
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console. Default: json
	Format string `koanf:"format"`

	// Caller includes file:line in every entry. Default: false
	Caller bool `koanf:"caller"`
}

// SecurityConfig holds the browser-facing protections of the API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// UpstreamConfig holds the transport settings shared by every upstream client.
type UpstreamConfig struct {
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	MaxRetries        int           `koanf:"max_retries"`
	RetryBaseDelay    time.Duration `koanf:"retry_base_delay"`
}

// GoogleConfig configures the Google Maps web services.
type GoogleConfig struct {
	APIKey   string         `koanf:"api_key"`
	BaseURL  string         `koanf:"base_url"`
	Upstream UpstreamConfig `koanf:"upstream"`
}

// OpenAIConfig configures the chat-completion model used for ranking.
//
// Provider "azure" (the default) talks to an Azure OpenAI deployment and
// requires Endpoint. Provider "openai" talks to the public OpenAI API.
type OpenAIConfig struct {
	Provider    string         `koanf:"provider"`
	APIKey      string         `koanf:"api_key"`
	Endpoint    string         `koanf:"endpoint"`
	Deployment  string         `koanf:"deployment"`
	APIVersion  string         `koanf:"api_version"`
	BaseURL     string         `koanf:"base_url"`
	Model       string         `koanf:"model"`
	Temperature float64        `koanf:"temperature"`
	MaxTokens   int            `koanf:"max_tokens"`
	Upstream    UpstreamConfig `koanf:"upstream"`
}

// WeatherConfig configures WeatherAPI.com.
type WeatherConfig struct {
	APIKey   string         `koanf:"api_key"`
	BaseURL  string         `koanf:"base_url"`
	Upstream UpstreamConfig `koanf:"upstream"`
}

// CacheConfig configures the response cache and its optional persistent tier.
type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`

	// Backend is memory (default), badger or redis.
	Backend string `koanf:"backend"`

	BadgerPath       string        `koanf:"badger_path"`
	BadgerGCInterval time.Duration `koanf:"badger_gc_interval"`
	BadgerGCRatio    float64       `koanf:"badger_gc_ratio"`

	RedisAddr      string `koanf:"redis_addr"`
	RedisPassword  string `koanf:"redis_password"`
	RedisDB        int    `koanf:"redis_db"`
	RedisKeyPrefix string `koanf:"redis_key_prefix"`
}

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
	CacheBackendRedis  = "redis"
)

// RecommendConfig tunes the recommendation pipeline.
type RecommendConfig struct {
	SearchRadiusMeters       int      `koanf:"search_radius_meters"`
	RankPoolSize             int      `koanf:"rank_pool_size"`
	MaxRanked                int      `koanf:"max_ranked"`
	MatchCutoff              float64  `koanf:"match_cutoff"`
	AttractionsPerPreference int      `koanf:"attractions_per_preference"`
	MaxAttractions           int      `koanf:"max_attractions"`
	DefaultPreferences       []string `koanf:"default_preferences"`
	LocationConcurrency      int      `koanf:"location_concurrency"`
}

// ScannerConfig tunes the route attraction scanner.
type ScannerConfig struct {
	Workers           int `koanf:"workers"`
	Step              int `koanf:"step"`
	MaxDistanceMeters int `koanf:"max_distance_meters"`
	MaxPerCategory    int `koanf:"max_per_category"`
	MaxTotal          int `koanf:"max_total"`
}

// TimeoutsConfig bounds planner components and HTTP handlers.
type TimeoutsConfig struct {
	Route            time.Duration `koanf:"route"`
	Traffic          time.Duration `koanf:"traffic"`
	Weather          time.Duration `koanf:"weather"`
	Recommendations  time.Duration `koanf:"recommendations"`
	RouteAttractions time.Duration `koanf:"route_attractions"`

	// PlanRequest bounds a whole /api/plan_trip request.
	PlanRequest time.Duration `koanf:"plan_request"`

	// Request bounds the other API handlers.
	Request time.Duration `koanf:"request"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
