// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateSecurity,
		c.validateGoogle,
		c.validateOpenAI,
		c.validateWeather,
		c.validateCache,
		c.validateRecommend,
		c.validateScanner,
		c.validateTimeouts,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be trace, debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	if c.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return errors.New("CORS_ORIGINS must not contain * in production")
			}
		}
	}
	return nil
}

func (c *Config) validateGoogle() error {
	if c.Google.APIKey == "" {
		return errors.New("GOOGLE_MAPS_API_KEY is required")
	}
	if c.Google.BaseURL != "" {
		if err := validateHTTPURL(c.Google.BaseURL, "GOOGLE_MAPS_BASE_URL"); err != nil {
			return err
		}
	}
	return validateUpstream(c.Google.Upstream, "GOOGLE_MAPS")
}

func (c *Config) validateOpenAI() error {
	if c.OpenAI.APIKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	switch strings.ToLower(c.OpenAI.Provider) {
	case "azure":
		if c.OpenAI.Endpoint == "" {
			return errors.New("AZURE_OPENAI_ENDPOINT is required unless OPENAI_PROVIDER=openai")
		}
		if err := validateHTTPURL(c.OpenAI.Endpoint, "AZURE_OPENAI_ENDPOINT"); err != nil {
			return err
		}
	case "openai":
		if c.OpenAI.BaseURL != "" {
			if err := validateHTTPURL(c.OpenAI.BaseURL, "OPENAI_BASE_URL"); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("OPENAI_PROVIDER must be azure or openai, got %q", c.OpenAI.Provider)
	}
	if c.OpenAI.Temperature < 0 || c.OpenAI.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be in [0, 2], got %g", c.OpenAI.Temperature)
	}
	if c.OpenAI.MaxTokens < 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must not be negative, got %d", c.OpenAI.MaxTokens)
	}
	return validateUpstream(c.OpenAI.Upstream, "OPENAI")
}

func (c *Config) validateWeather() error {
	if c.Weather.APIKey == "" {
		return errors.New("WEATHER_API_KEY is required")
	}
	if c.Weather.BaseURL != "" {
		if err := validateHTTPURL(c.Weather.BaseURL, "WEATHER_BASE_URL"); err != nil {
			return err
		}
	}
	return validateUpstream(c.Weather.Upstream, "WEATHER")
}

func validateUpstream(u UpstreamConfig, prefix string) error {
	if u.Timeout <= 0 {
		return fmt.Errorf("%s_TIMEOUT must be positive", prefix)
	}
	if u.RequestsPerSecond < 0 {
		return fmt.Errorf("%s_RPS must not be negative, got %g", prefix, u.RequestsPerSecond)
	}
	if u.MaxRetries < 0 {
		return fmt.Errorf("%s_MAX_RETRIES must not be negative, got %d", prefix, u.MaxRetries)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTL <= 0 {
		return errors.New("CACHE_TTL must be positive")
	}
	switch c.Cache.Backend {
	case CacheBackendMemory:
	case CacheBackendBadger:
		if c.Cache.BadgerPath == "" {
			return errors.New("CACHE_BADGER_PATH is required when CACHE_BACKEND=badger")
		}
		if c.Cache.BadgerGCInterval <= 0 {
			return errors.New("CACHE_BADGER_GC_INTERVAL must be positive")
		}
		if c.Cache.BadgerGCRatio <= 0 || c.Cache.BadgerGCRatio >= 1 {
			return fmt.Errorf("CACHE_BADGER_GC_RATIO must be in (0, 1), got %g", c.Cache.BadgerGCRatio)
		}
	case CacheBackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required when CACHE_BACKEND=redis")
		}
		if c.Cache.RedisDB < 0 {
			return fmt.Errorf("REDIS_DB must not be negative, got %d", c.Cache.RedisDB)
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be memory, badger or redis, got %q", c.Cache.Backend)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.SearchRadiusMeters <= 0 || r.SearchRadiusMeters > 50000 {
		return fmt.Errorf("RECOMMEND_SEARCH_RADIUS must be in (0, 50000], got %d", r.SearchRadiusMeters)
	}
	if r.MatchCutoff <= 0 || r.MatchCutoff > 1 {
		return fmt.Errorf("RECOMMEND_MATCH_CUTOFF must be in (0, 1], got %g", r.MatchCutoff)
	}
	if r.RankPoolSize <= 0 || r.MaxRanked <= 0 || r.AttractionsPerPreference <= 0 ||
		r.MaxAttractions <= 0 || r.LocationConcurrency <= 0 {
		return errors.New("recommend pool sizes and limits must be positive")
	}
	if len(r.DefaultPreferences) == 0 {
		return errors.New("RECOMMEND_DEFAULT_PREFERENCES must not be empty")
	}
	return nil
}

func (c *Config) validateScanner() error {
	s := c.Scanner
	if s.Workers <= 0 || s.Step <= 0 {
		return fmt.Errorf("SCANNER_WORKERS and SCANNER_STEP must be positive, got %d and %d", s.Workers, s.Step)
	}
	if s.MaxDistanceMeters <= 0 || s.MaxDistanceMeters > 50000 {
		return fmt.Errorf("SCANNER_MAX_DISTANCE must be in (0, 50000], got %d", s.MaxDistanceMeters)
	}
	if s.MaxPerCategory <= 0 || s.MaxTotal <= 0 {
		return errors.New("SCANNER_MAX_PER_CATEGORY and SCANNER_MAX_TOTAL must be positive")
	}
	return nil
}

func (c *Config) validateTimeouts() error {
	t := c.Timeouts
	for name, d := range map[string]time.Duration{
		"TIMEOUT_ROUTE":             t.Route,
		"TIMEOUT_TRAFFIC":           t.Traffic,
		"TIMEOUT_WEATHER":           t.Weather,
		"TIMEOUT_RECOMMENDATIONS":   t.Recommendations,
		"TIMEOUT_ROUTE_ATTRACTIONS": t.RouteAttractions,
		"TIMEOUT_PLAN_REQUEST":      t.PlanRequest,
		"TIMEOUT_REQUEST":           t.Request,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= t.PlanRequest {
		return fmt.Errorf("HTTP_WRITE_TIMEOUT (%s) must exceed TIMEOUT_PLAN_REQUEST (%s)", c.Server.WriteTimeout, t.PlanRequest)
	}
	return nil
}

// validateHTTPURL checks that rawURL is an absolute http(s) URL without a
// query string. Paths are allowed: an OpenAI-compatible root such as
// https://api.openai.com/v1 carries one.
func validateHTTPURL(rawURL, fieldName string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %s", fieldName, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsedURL.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters, remove: ?%s", fieldName, parsedURL.RawQuery)
	}
	return nil
}
