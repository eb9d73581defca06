// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
// The first file found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/roadtrip/config.yaml",
	"/etc/roadtrip/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultUpstream(rps float64, burst int) UpstreamConfig {
	return UpstreamConfig{
		Timeout:           30 * time.Second,
		RequestsPerSecond: rps,
		Burst:             burst,
		MaxRetries:        3,
		RetryBaseDelay:    time.Second,
	}
}

// defaultConfig returns the built-in defaults. The config file and the
// environment are layered on top.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    90 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"http://localhost:3000"},
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
		},
		// Google allows 50 QPS per project for the Places API; stay well below.
		Google: GoogleConfig{
			Upstream: defaultUpstream(20, 20),
		},
		OpenAI: OpenAIConfig{
			Provider:    "azure",
			APIVersion:  "2024-06-01",
			Model:       "gpt-4o",
			Temperature: 0.2,
			MaxTokens:   500,
			Upstream:    defaultUpstream(5, 5),
		},
		Weather: WeatherConfig{
			Upstream: defaultUpstream(10, 10),
		},
		Cache: CacheConfig{
			TTL:              time.Hour,
			Backend:          CacheBackendMemory,
			BadgerPath:       "/data/cache",
			BadgerGCInterval: 10 * time.Minute,
			BadgerGCRatio:    0.5,
			RedisKeyPrefix:   "roadtrip:",
		},
		Recommend: RecommendConfig{
			SearchRadiusMeters:       5000,
			RankPoolSize:             20,
			MaxRanked:                5,
			MatchCutoff:              0.7,
			AttractionsPerPreference: 3,
			MaxAttractions:           9,
			DefaultPreferences:       []string{"museum", "restaurant", "shopping_mall"},
			LocationConcurrency:      4,
		},
		Scanner: ScannerConfig{
			Workers:           8,
			Step:              10,
			MaxDistanceMeters: 5000,
			MaxPerCategory:    5,
			MaxTotal:          20,
		},
		Timeouts: TimeoutsConfig{
			Route:            15 * time.Second,
			Traffic:          20 * time.Second,
			Weather:          15 * time.Second,
			Recommendations:  45 * time.Second,
			RouteAttractions: 30 * time.Second,
			PlanRequest:      60 * time.Second,
			Request:          50 * time.Second,
		},
	}
}

// Load builds the configuration from three layers, later layers winning:
//  1. Built-in defaults
//  2. Optional YAML config file (CONFIG_PATH or a default path)
//  3. Environment variables
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// GOOGLE_MAPS_API_KEY -> google.api_key, CACHE_BACKEND -> cache.backend
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.default_preferences",
}

// processSliceFields splits comma-separated strings into slices for the
// known slice paths. Values from YAML are already slices and are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored so the process environment cannot leak
// into the config.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"port":                  "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Google Maps
	"google_maps_api_key":       "google.api_key",
	"google_maps_base_url":      "google.base_url",
	"google_maps_rps":           "google.upstream.requests_per_second",
	"google_maps_burst":         "google.upstream.burst",
	"google_maps_timeout":       "google.upstream.timeout",
	"google_maps_max_retries":   "google.upstream.max_retries",
	"google_maps_retry_backoff": "google.upstream.retry_base_delay",

	// Chat completion
	"openai_provider":          "openai.provider",
	"openai_api_key":           "openai.api_key",
	"openai_base_url":          "openai.base_url",
	"openai_model":             "openai.model",
	"openai_temperature":       "openai.temperature",
	"openai_max_tokens":        "openai.max_tokens",
	"openai_timeout":           "openai.upstream.timeout",
	"openai_rps":               "openai.upstream.requests_per_second",
	"openai_max_retries":       "openai.upstream.max_retries",
	"azure_openai_endpoint":    "openai.endpoint",
	"azure_openai_deployment":  "openai.deployment",
	"azure_openai_api_version": "openai.api_version",

	// WeatherAPI
	"weather_api_key":     "weather.api_key",
	"weather_base_url":    "weather.base_url",
	"weather_rps":         "weather.upstream.requests_per_second",
	"weather_timeout":     "weather.upstream.timeout",
	"weather_max_retries": "weather.upstream.max_retries",

	// Cache
	"cache_ttl":                "cache.ttl",
	"cache_backend":            "cache.backend",
	"cache_badger_path":        "cache.badger_path",
	"cache_badger_gc_interval": "cache.badger_gc_interval",
	"cache_badger_gc_ratio":    "cache.badger_gc_ratio",
	"redis_addr":               "cache.redis_addr",
	"redis_password":           "cache.redis_password",
	"redis_db":                 "cache.redis_db",
	"redis_key_prefix":         "cache.redis_key_prefix",

	// Recommendations
	"recommend_search_radius":       "recommend.search_radius_meters",
	"recommend_rank_pool_size":      "recommend.rank_pool_size",
	"recommend_max_ranked":          "recommend.max_ranked",
	"recommend_match_cutoff":        "recommend.match_cutoff",
	"recommend_per_preference":      "recommend.attractions_per_preference",
	"recommend_max_attractions":     "recommend.max_attractions",
	"recommend_default_preferences": "recommend.default_preferences",
	"recommend_concurrency":         "recommend.location_concurrency",

	// Route scanner
	"scanner_workers":          "scanner.workers",
	"scanner_step":             "scanner.step",
	"scanner_max_distance":     "scanner.max_distance_meters",
	"scanner_max_per_category": "scanner.max_per_category",
	"scanner_max_total":        "scanner.max_total",

	// Timeouts
	"timeout_route":             "timeouts.route",
	"timeout_traffic":           "timeouts.traffic",
	"timeout_weather":           "timeouts.weather",
	"timeout_recommendations":   "timeouts.recommendations",
	"timeout_route_attractions": "timeouts.route_attractions",
	"timeout_plan_request":      "timeouts.plan_request",
	"timeout_request":           "timeouts.request",
}

// envTransformFunc maps an environment variable name to its koanf path, or
// "" to skip it.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
