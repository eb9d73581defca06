// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/roadtrip/internal/models"
)

// createTestBadgerTier opens an in-memory badger tier for tests.
func createTestBadgerTier(t *testing.T) *BadgerTier {
	t.Helper()

	tier, err := OpenBadger(BadgerConfig{InMemory: true})
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	t.Cleanup(func() {
		_ = tier.Close()
	})
	return tier
}

// failingTier returns an error from every call.
type failingTier struct{}

func (failingTier) Name() string { return "failing" }
func (failingTier) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}
func (failingTier) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("disk on fire")
}
func (failingTier) DeletePrefix(context.Context, string) error { return errors.New("disk on fire") }
func (failingTier) Close() error                               { return nil }

// mapTier is an in-process Tier that records the TTLs it was given.
type mapTier struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMapTier() *mapTier {
	return &mapTier{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mapTier) Name() string { return "map" }

func (m *mapTier) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	return d, ok, nil
}

func (m *mapTier) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	m.ttls[key] = ttl
	return nil
}

func (m *mapTier) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *mapTier) Close() error { return nil }

func TestTierPersistencePreservesExpiry(t *testing.T) {
	clock := newFakeClock()
	tier := newMapTier()

	first := New(Config{TTL: time.Hour}, WithClock(clock.Now), WithTier(tier))
	first.Route.Set("route-1", models.RouteSummary{TotalDistanceMiles: 80.5})

	if tier.ttls["route:route-1"] != time.Hour {
		t.Errorf("tier TTL = %v, want 1h", tier.ttls["route:route-1"])
	}

	// A fresh process reads the entry back from the tier.
	clock.Advance(30 * time.Minute)
	second := New(Config{TTL: time.Hour}, WithClock(clock.Now), WithTier(tier))
	got, ok := second.Route.Get("route-1")
	if !ok {
		t.Fatal("Expected entry to be loaded from the persistent tier")
	}
	if got.TotalDistanceMiles != 80.5 {
		t.Errorf("TotalDistanceMiles = %v, want 80.5", got.TotalDistanceMiles)
	}

	// It expires when the original would have, not an hour after reload.
	clock.Advance(30 * time.Minute)
	if _, ok := second.Route.Get("route-1"); ok {
		t.Error("Expected reloaded entry to keep the original store time")
	}
}

func TestTierFailureIsMiss(t *testing.T) {
	c := New(Config{}, WithTier(failingTier{}))

	c.Geocode.Set("k", models.Coordinate{Lat: 1})

	// Memory still serves the value even though the tier write failed.
	if _, ok := c.Geocode.Get("k"); !ok {
		t.Error("Expected in-memory hit despite tier failure")
	}
	if _, ok := c.Geocode.Get("missing"); ok {
		t.Error("Expected tier read failure to be a miss")
	}

	c.Clear()
}

func TestTierClearRemovesCategoryPrefix(t *testing.T) {
	tier := newMapTier()
	c := New(Config{}, WithTier(tier))

	c.Geocode.Set("a", models.Coordinate{})
	c.Weather.Set("a", models.WeatherReport{})

	c.Clear(CategoryGeocode)

	if _, ok, _ := tier.Get(context.Background(), "geocode:a"); ok {
		t.Error("Expected geocode key to be removed from tier")
	}
	if _, ok, _ := tier.Get(context.Background(), "weather:a"); !ok {
		t.Error("Expected weather key to remain in tier")
	}
}

func TestBadgerTierRoundTrip(t *testing.T) {
	tier := createTestBadgerTier(t)
	ctx := context.Background()

	if _, found, err := tier.Get(ctx, "geocode:x"); err != nil || found {
		t.Fatalf("Get() on empty tier = found %v, err %v", found, err)
	}

	if err := tier.Set(ctx, "geocode:x", []byte(`{"a":1}`), time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	data, found, err := tier.Get(ctx, "geocode:x")
	if err != nil || !found {
		t.Fatalf("Get() = found %v, err %v", found, err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("Get() = %s", data)
	}

	if err := tier.DeletePrefix(ctx, "geocode:"); err != nil {
		t.Fatalf("DeletePrefix() error = %v", err)
	}
	if _, found, _ := tier.Get(ctx, "geocode:x"); found {
		t.Error("Expected key to be removed by DeletePrefix")
	}

	if err := tier.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
}

func TestBadgerTierWithCache(t *testing.T) {
	tier := createTestBadgerTier(t)
	clock := newFakeClock()

	writer := New(Config{}, WithClock(clock.Now), WithTier(tier))
	writer.Details.Set("details_p1", models.PlaceDetail{
		Name:         "Cafe Du Monde",
		PlaceID:      "p1",
		Rating:       models.RatingOf(4.6),
		OpeningHours: models.WeeklyHours{"Monday: 7AM-11PM"},
	})

	reader := New(Config{}, WithClock(clock.Now), WithTier(tier))
	got, ok := reader.Details.Get("details_p1")
	if !ok {
		t.Fatal("Expected detail to be read back from badger")
	}
	if got.Name != "Cafe Du Monde" || got.Rating.Value != 4.6 || len(got.OpeningHours) != 1 {
		t.Errorf("round trip = %+v", got)
	}
}

func TestBadgerTierClosed(t *testing.T) {
	tier, err := OpenBadger(BadgerConfig{InMemory: true})
	if err != nil {
		t.Fatalf("OpenBadger() error = %v", err)
	}
	if err := tier.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := tier.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, _, err := tier.Get(context.Background(), "k"); !errors.Is(err, ErrTierClosed) {
		t.Errorf("Get() after close error = %v, want ErrTierClosed", err)
	}
}

func TestOpenBadgerRequiresPath(t *testing.T) {
	if _, err := OpenBadger(BadgerConfig{}); err == nil {
		t.Error("Expected error when path is empty and not in-memory")
	}
}

func TestOpenRedisRequiresAddr(t *testing.T) {
	if _, err := OpenRedis(context.Background(), RedisConfig{}); err == nil {
		t.Error("Expected error for empty address")
	}
}
