// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/config"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/supervisor"
	"github.com/tomtom215/roadtrip/internal/supervisor/services"
)

// initCache builds the response cache and its optional persistent tier.
// With the badger backend the value log GC is registered in the storage layer.
func initCache(ctx context.Context, cfg *config.Config, tree *supervisor.SupervisorTree) (*cache.Cache, error) {
	opts := []cache.Option{cache.WithLogger(logging.WithComponent("cache"))}

	switch cfg.Cache.Backend {
	case config.CacheBackendBadger:
		tier, err := cache.OpenBadger(cache.BadgerConfig{
			Path:    cfg.Cache.BadgerPath,
			GCRatio: cfg.Cache.BadgerGCRatio,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, cache.WithTier(tier))
		tree.AddStorageService(services.NewCacheGCService(tier, cfg.Cache.BadgerGCInterval))

	case config.CacheBackendRedis:
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		tier, err := cache.OpenRedis(pingCtx, cache.RedisConfig{
			Addr:      cfg.Cache.RedisAddr,
			Password:  cfg.Cache.RedisPassword,
			DB:        cfg.Cache.RedisDB,
			KeyPrefix: cfg.Cache.RedisKeyPrefix,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, cache.WithTier(tier))

	case config.CacheBackendMemory, "":
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	c := cache.New(cache.Config{TTL: cfg.Cache.TTL}, opts...)
	logging.Info().
		Str("backend", c.Backend()).
		Dur("ttl", cfg.Cache.TTL).
		Msg("Cache initialized")
	return c, nil
}
