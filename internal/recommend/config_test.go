// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.RankPoolSize != MaxCandidates {
		t.Errorf("RankPoolSize = %d, want %d", cfg.RankPoolSize, MaxCandidates)
	}
	if cfg.MatchCutoff != 0.7 {
		t.Errorf("MatchCutoff = %g, want 0.7", cfg.MatchCutoff)
	}
	if len(cfg.DefaultPreferences) != 3 {
		t.Errorf("DefaultPreferences = %v", cfg.DefaultPreferences)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero radius", func(c *Config) { c.SearchRadiusMeters = 0 }, "search_radius_meters"},
		{"radius too large", func(c *Config) { c.SearchRadiusMeters = 50001 }, "search_radius_meters"},
		{"pool above candidates", func(c *Config) { c.RankPoolSize = MaxCandidates + 1 }, "rank_pool_size"},
		{"no ranked", func(c *Config) { c.MaxRanked = 0 }, "max_ranked"},
		{"cutoff above one", func(c *Config) { c.MatchCutoff = 1.5 }, "match_cutoff"},
		{"zero cutoff", func(c *Config) { c.MatchCutoff = 0 }, "match_cutoff"},
		{"per preference", func(c *Config) { c.AttractionsPerPreference = 0 }, "attractions_per_preference"},
		{"max attractions", func(c *Config) { c.MaxAttractions = -1 }, "max_attractions"},
		{"concurrency", func(c *Config) { c.LocationConcurrency = 0 }, "location_concurrency"},
		{"scan workers", func(c *Config) { c.ScanWorkers = 0 }, "scan_workers"},
		{"scan step", func(c *Config) { c.ScanStep = 0 }, "scan_step"},
		{"radius at limit", func(c *Config) { c.SearchRadiusMeters = 50000 }, ""},
		{"cutoff of one", func(c *Config) { c.MatchCutoff = 1 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
