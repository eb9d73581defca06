// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package main

import (
	"fmt"

	"github.com/tomtom215/roadtrip/internal/api"
	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/config"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/recommend"
	"github.com/tomtom215/roadtrip/internal/trip"
	"github.com/tomtom215/roadtrip/internal/upstream"
)

// components holds everything the HTTP handlers need.
type components struct {
	google  *upstream.GoogleClient
	weather *upstream.WeatherClient
	chat    *upstream.ChatClient

	orchestrator *recommend.Orchestrator
	scanner      *recommend.Scanner
	routes       *trip.RouteService
	planner      *trip.Planner
}

func clientOptions(u config.UpstreamConfig) upstream.ClientOptions {
	opts := upstream.DefaultClientOptions()
	opts.RequestsPerSecond = u.RequestsPerSecond
	opts.Burst = u.Burst
	if u.Timeout > 0 {
		opts.Timeout = u.Timeout
	}
	if u.MaxRetries > 0 {
		opts.MaxRetries = u.MaxRetries
	}
	if u.RetryBaseDelay > 0 {
		opts.RetryBaseDelay = u.RetryBaseDelay
	}
	return opts
}

func recommendConfig(cfg *config.Config) recommend.Config {
	return recommend.Config{
		SearchRadiusMeters:       cfg.Recommend.SearchRadiusMeters,
		RankPoolSize:             cfg.Recommend.RankPoolSize,
		MaxRanked:                cfg.Recommend.MaxRanked,
		MatchCutoff:              cfg.Recommend.MatchCutoff,
		AttractionsPerPreference: cfg.Recommend.AttractionsPerPreference,
		MaxAttractions:           cfg.Recommend.MaxAttractions,
		DefaultPreferences:       cfg.Recommend.DefaultPreferences,
		LocationConcurrency:      cfg.Recommend.LocationConcurrency,
		ScanWorkers:              cfg.Scanner.Workers,
		ScanStep:                 cfg.Scanner.Step,
	}
}

func scanOptions(cfg *config.Config) recommend.ScanOptions {
	return recommend.ScanOptions{
		MaxDistanceMeters: cfg.Scanner.MaxDistanceMeters,
		MaxPerCategory:    cfg.Scanner.MaxPerCategory,
		MaxTotal:          cfg.Scanner.MaxTotal,
	}
}

// initComponents wires upstream clients, the recommendation pipeline and the
// trip planner. Every service shares the one response cache.
func initComponents(cfg *config.Config, c *cache.Cache) (*components, error) {
	google, err := upstream.NewGoogleClient(upstream.GoogleConfig{
		APIKey:  cfg.Google.APIKey,
		BaseURL: cfg.Google.BaseURL,
		Options: clientOptions(cfg.Google.Upstream),
	})
	if err != nil {
		return nil, fmt.Errorf("google client: %w", err)
	}
	weather := upstream.NewWeatherClient(upstream.WeatherConfig{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Options: clientOptions(cfg.Weather.Upstream),
	})

	temperature := cfg.OpenAI.Temperature
	chat, err := upstream.NewChatClient(upstream.ChatConfig{
		Provider:    cfg.OpenAI.Provider,
		APIKey:      cfg.OpenAI.APIKey,
		Endpoint:    cfg.OpenAI.Endpoint,
		Deployment:  cfg.OpenAI.Deployment,
		APIVersion:  cfg.OpenAI.APIVersion,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: &temperature,
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Options:     clientOptions(cfg.OpenAI.Upstream),
	})
	if err != nil {
		return nil, fmt.Errorf("chat client: %w", err)
	}

	rc := recommendConfig(cfg)
	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("recommend config: %w", err)
	}

	geocoder := recommend.NewGeocoder(google, c)
	places := recommend.NewPlaceFetcher(google, c)
	details := recommend.NewDetailFetcher(google, c)
	orchestrator := recommend.NewOrchestrator(rc, geocoder, places, details, recommend.NewRanker(chat, rc))
	scanner := recommend.NewScanner(places, rc)

	routes := trip.NewRouteService(google, c)
	planner := trip.NewPlanner(
		trip.PlannerConfig{
			Timeouts: trip.Timeouts{
				Route:            cfg.Timeouts.Route,
				Traffic:          cfg.Timeouts.Traffic,
				Weather:          cfg.Timeouts.Weather,
				Recommendations:  cfg.Timeouts.Recommendations,
				RouteAttractions: cfg.Timeouts.RouteAttractions,
			},
			DefaultPreferences: rc.DefaultPreferences,
			Scan:               scanOptions(cfg),
		},
		routes,
		trip.NewTrafficService(google, geocoder),
		trip.NewWeatherService(weather, c),
		orchestrator,
		scanner,
	)

	logging.Info().
		Str("llm_provider", cfg.OpenAI.Provider).
		Int("scan_workers", rc.ScanWorkers).
		Int("search_radius_m", rc.SearchRadiusMeters).
		Msg("Trip planner initialized")

	return &components{
		google:       google,
		weather:      weather,
		chat:         chat,
		orchestrator: orchestrator,
		scanner:      scanner,
		routes:       routes,
		planner:      planner,
	}, nil
}

func (c *components) handlerDeps(cfg *config.Config, admin api.CacheAdmin) api.HandlerDeps {
	return api.HandlerDeps{
		Planner:     c.planner,
		Recommender: c.orchestrator,
		Routes:      c.routes,
		Scanner:     c.scanner,
		Cache:       admin,
		Upstreams: map[string]api.BreakerReporter{
			"google":  c.google,
			"weather": c.weather,
			"llm":     c.chat,
		},
		Timeouts: api.Timeouts{
			PlanTrip:         cfg.Timeouts.PlanRequest,
			Recommendations:  cfg.Timeouts.Request,
			RouteAttractions: cfg.Timeouts.Request,
		},
		ScanDefaults: scanOptions(cfg),
	}
}
