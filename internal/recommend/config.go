// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"fmt"
)

// MaxCandidates is the upper bound on places kept from one Nearby Search.
const MaxCandidates = 20

// Config contains the tunables for recommendations and route scanning.
type Config struct {
	// SearchRadiusMeters is the Nearby Search radius around each location.
	SearchRadiusMeters int `json:"search_radius_meters"`

	// RankPoolSize truncates restaurant and hotel candidates before AI ranking.
	RankPoolSize int `json:"rank_pool_size"`

	// MaxRanked is the number of places the ranker returns.
	MaxRanked int `json:"max_ranked"`

	// MatchCutoff is the minimum similarity for an LLM name to match a candidate.
	MatchCutoff float64 `json:"match_cutoff"`

	// AttractionsPerPreference caps how many places each preference contributes.
	AttractionsPerPreference int `json:"attractions_per_preference"`

	// MaxAttractions caps the merged attraction list per location.
	MaxAttractions int `json:"max_attractions"`

	// DefaultPreferences are used when a request names none.
	DefaultPreferences []string `json:"default_preferences"`

	// LocationConcurrency bounds how many locations are processed at once.
	LocationConcurrency int `json:"location_concurrency"`

	// ScanWorkers sizes the route scanner's worker pool.
	ScanWorkers int `json:"scan_workers"`

	// ScanStep keeps every Nth route point when scanning.
	ScanStep int `json:"scan_step"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		SearchRadiusMeters:       5000,
		RankPoolSize:             MaxCandidates,
		MaxRanked:                5,
		MatchCutoff:              0.7,
		AttractionsPerPreference: 3,
		MaxAttractions:           9,
		DefaultPreferences:       []string{"museum", "restaurant", "shopping_mall"},
		LocationConcurrency:      4,
		ScanWorkers:              8,
		ScanStep:                 10,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.SearchRadiusMeters <= 0 || c.SearchRadiusMeters > 50000 {
		return fmt.Errorf("search_radius_meters must be in (0, 50000], got %d", c.SearchRadiusMeters)
	}
	if c.RankPoolSize <= 0 || c.RankPoolSize > MaxCandidates {
		return fmt.Errorf("rank_pool_size must be in [1, %d], got %d", MaxCandidates, c.RankPoolSize)
	}
	if c.MaxRanked <= 0 {
		return fmt.Errorf("max_ranked must be positive, got %d", c.MaxRanked)
	}
	if c.MatchCutoff <= 0 || c.MatchCutoff > 1 {
		return fmt.Errorf("match_cutoff must be in (0, 1], got %g", c.MatchCutoff)
	}
	if c.AttractionsPerPreference <= 0 {
		return fmt.Errorf("attractions_per_preference must be positive, got %d", c.AttractionsPerPreference)
	}
	if c.MaxAttractions <= 0 {
		return fmt.Errorf("max_attractions must be positive, got %d", c.MaxAttractions)
	}
	if c.LocationConcurrency <= 0 {
		return fmt.Errorf("location_concurrency must be positive, got %d", c.LocationConcurrency)
	}
	if c.ScanWorkers <= 0 {
		return fmt.Errorf("scan_workers must be positive, got %d", c.ScanWorkers)
	}
	if c.ScanStep <= 0 {
		return fmt.Errorf("scan_step must be positive, got %d", c.ScanStep)
	}
	return nil
}
