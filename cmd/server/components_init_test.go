// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package main

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/roadtrip/internal/config"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/supervisor"
)

func TestClientOptions(t *testing.T) {
	t.Parallel()

	opts := clientOptions(config.UpstreamConfig{})
	if opts.Timeout != 30*time.Second || opts.MaxRetries != 3 || opts.RetryBaseDelay != time.Second {
		t.Errorf("zero config should keep defaults, got %+v", opts)
	}

	opts = clientOptions(config.UpstreamConfig{
		Timeout:           5 * time.Second,
		RequestsPerSecond: 10,
		Burst:             4,
		MaxRetries:        1,
		RetryBaseDelay:    200 * time.Millisecond,
	})
	if opts.Timeout != 5*time.Second || opts.RequestsPerSecond != 10 || opts.Burst != 4 ||
		opts.MaxRetries != 1 || opts.RetryBaseDelay != 200*time.Millisecond {
		t.Errorf("overrides not applied: %+v", opts)
	}
}

func TestRecommendConfigIncludesScanner(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Recommend: config.RecommendConfig{SearchRadiusMeters: 3000, MaxRanked: 4},
		Scanner:   config.ScannerConfig{Workers: 6, Step: 12, MaxDistanceMeters: 2500, MaxPerCategory: 5, MaxTotal: 20},
	}
	rc := recommendConfig(cfg)
	if rc.SearchRadiusMeters != 3000 || rc.MaxRanked != 4 || rc.ScanWorkers != 6 || rc.ScanStep != 12 {
		t.Errorf("recommendConfig() = %+v", rc)
	}
	scan := scanOptions(cfg)
	if scan.MaxDistanceMeters != 2500 || scan.MaxPerCategory != 5 || scan.MaxTotal != 20 {
		t.Errorf("scanOptions() = %+v", scan)
	}
}

func TestInitCacheBackends(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cache   config.CacheConfig
		want    string
		wantErr bool
	}{
		{name: "memory", cache: config.CacheConfig{TTL: time.Hour, Backend: config.CacheBackendMemory}, want: "memory"},
		{name: "empty backend", cache: config.CacheConfig{TTL: time.Hour}, want: "memory"},
		{name: "badger", cache: config.CacheConfig{TTL: time.Hour, Backend: config.CacheBackendBadger, BadgerPath: t.TempDir()}, want: "badger"},
		{name: "badger without path", cache: config.CacheConfig{Backend: config.CacheBackendBadger}, wantErr: true},
		{name: "redis without address", cache: config.CacheConfig{Backend: config.CacheBackendRedis}, wantErr: true},
		{name: "unknown", cache: config.CacheConfig{Backend: "memcached"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.Logger()), supervisor.TreeConfig{})
			if err != nil {
				t.Fatalf("NewSupervisorTree() error = %v", err)
			}
			c, err := initCache(context.Background(), &config.Config{Cache: tt.cache}, tree)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("initCache() error = %v", err)
			}
			defer c.Close()
			if got := c.Backend(); got != tt.want {
				t.Errorf("Backend() = %q, want %q", got, tt.want)
			}
		})
	}
}
