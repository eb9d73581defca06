// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/roadtrip/internal/cache"
)

var (
	_ suture.Service   = (*CacheGCService)(nil)
	_ GarbageCollector = (*cache.BadgerTier)(nil)
)

type countingGC struct {
	runs atomic.Int32
	err  error
}

func (g *countingGC) RunGC() error {
	g.runs.Add(1)
	return g.err
}

func TestCacheGCServiceRunsPeriodically(t *testing.T) {
	t.Parallel()

	gc := &countingGC{}
	svc := NewCacheGCService(gc, time.Second)
	svc.interval = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want deadline", err)
	}
	if n := gc.runs.Load(); n < 2 {
		t.Errorf("GC runs = %d, want at least 2", n)
	}
}

func TestCacheGCServiceReturnsError(t *testing.T) {
	t.Parallel()

	gc := &countingGC{err: cache.ErrTierClosed}
	svc := NewCacheGCService(gc, time.Second)
	svc.interval = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, cache.ErrTierClosed) {
		t.Errorf("Serve() = %v, want ErrTierClosed", err)
	}
}

func TestCacheGCServiceInMemoryBadger(t *testing.T) {
	t.Parallel()

	tier, err := cache.OpenBadger(cache.BadgerConfig{InMemory: true})
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	defer tier.Close()

	svc := NewCacheGCService(tier, time.Second)
	svc.interval = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want deadline", err)
	}
}

func TestNewCacheGCServiceInterval(t *testing.T) {
	t.Parallel()

	if got := NewCacheGCService(&countingGC{}, 0).interval; got != time.Minute {
		t.Errorf("interval = %v, want 1m", got)
	}
	if got := NewCacheGCService(&countingGC{}, 10*time.Minute).interval; got != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", got)
	}
}
