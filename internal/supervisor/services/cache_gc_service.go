// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/roadtrip/internal/logging"
)

// GarbageCollector is satisfied by *cache.BadgerTier.
type GarbageCollector interface {
	RunGC() error
}

// CacheGCService periodically reclaims value log space of the badger cache
// tier. Expired cache entries are only dropped from disk by this GC.
type CacheGCService struct {
	gc       GarbageCollector
	interval time.Duration
}

// NewCacheGCService creates the service. Intervals below one second are
// raised to one minute.
func NewCacheGCService(gc GarbageCollector, interval time.Duration) *CacheGCService {
	if interval < time.Second {
		interval = time.Minute
	}
	return &CacheGCService{gc: gc, interval: interval}
}

// Serve implements suture.Service. A GC error is returned so suture restarts
// the service with backoff.
func (s *CacheGCService) Serve(ctx context.Context) error {
	log := logging.WithComponent("cache-gc")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.gc.RunGC(); err != nil {
				return fmt.Errorf("cache GC: %w", err)
			}
			log.Debug().Dur("duration", time.Since(start)).Msg("Cache value log GC finished")
		}
	}
}

// String implements fmt.Stringer for suture's logs.
func (s *CacheGCService) String() string {
	return "cache-gc"
}
