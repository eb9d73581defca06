// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/roadtrip/internal/models"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCacheBasicOperations(t *testing.T) {
	c := New(Config{TTL: time.Minute})

	want := models.Coordinate{Lat: 29.9511, Lng: -90.0715}
	c.Geocode.Set("New Orleans, LA", want)

	got, ok := c.Geocode.Get("New Orleans, LA")
	if !ok {
		t.Fatal("Expected key to exist")
	}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if _, ok := c.Geocode.Get("Baton Rouge, LA"); ok {
		t.Error("Expected unknown key to be absent")
	}
}

func TestCacheExpiration(t *testing.T) {
	clock := newFakeClock()
	c := New(Config{TTL: time.Hour}, WithClock(clock.Now))

	c.Weather.Set("Memphis", models.WeatherReport{Location: "Memphis"})

	clock.Advance(59*time.Minute + 59*time.Second)
	if _, ok := c.Weather.Get("Memphis"); !ok {
		t.Error("Expected entry to be visible just before TTL")
	}

	clock.Advance(time.Second)
	if _, ok := c.Weather.Get("Memphis"); ok {
		t.Error("Expected entry to be expired at exactly TTL")
	}

	// Lazy deletion removes the expired entry on read.
	if n := c.Weather.Len(); n != 0 {
		t.Errorf("Expected expired entry to be deleted, Len() = %d", n)
	}
}

func TestCacheSetResetsStoredAt(t *testing.T) {
	clock := newFakeClock()
	c := New(Config{TTL: time.Hour}, WithClock(clock.Now))

	c.Geocode.Set("k", models.Coordinate{Lat: 1})
	clock.Advance(50 * time.Minute)
	c.Geocode.Set("k", models.Coordinate{Lat: 2})
	clock.Advance(50 * time.Minute)

	got, ok := c.Geocode.Get("k")
	if !ok {
		t.Fatal("Expected overwritten entry to still be fresh")
	}
	if got.Lat != 2 {
		t.Errorf("Expected last write to win, got %v", got)
	}
}

func TestCacheCategoryIsolation(t *testing.T) {
	c := New(Config{})

	c.Details.Set("details_abc", models.PlaceDetail{Name: "Cafe", PlaceID: "abc"})
	c.Places.Set("details_abc", []models.Place{{Name: "Other", PlaceID: "xyz"}})

	d, ok := c.Details.Get("details_abc")
	if !ok || d.Name != "Cafe" {
		t.Errorf("Details.Get() = %v, %v", d, ok)
	}

	c.Clear(CategoryPlaces)

	if _, ok := c.Places.Get("details_abc"); ok {
		t.Error("Expected places category to be cleared")
	}
	if _, ok := c.Details.Get("details_abc"); !ok {
		t.Error("Expected details category to survive clearing places")
	}
}

func TestCacheClearAll(t *testing.T) {
	c := New(Config{})

	c.Geocode.Set("a", models.Coordinate{})
	c.Places.Set("b", nil)
	c.Details.Set("c", models.PlaceDetail{})
	c.Route.Set("d", models.RouteSummary{})
	c.Weather.Set("e", models.WeatherReport{})

	c.Clear()

	for category, n := range c.Size() {
		if n != 0 {
			t.Errorf("Expected %s to be empty, got %d", category, n)
		}
	}
}

func TestCacheSize(t *testing.T) {
	c := New(Config{})

	for i := 0; i < 3; i++ {
		c.Geocode.Set(fmt.Sprintf("addr-%d", i), models.Coordinate{})
	}
	c.Details.Set("details_1", models.PlaceDetail{})

	size := c.Size()
	if size[CategoryGeocode] != 3 {
		t.Errorf("geocode size = %d, want 3", size[CategoryGeocode])
	}
	if size[CategoryDetails] != 1 {
		t.Errorf("details size = %d, want 1", size[CategoryDetails])
	}
	if size[CategoryWeather] != 0 {
		t.Errorf("weather size = %d, want 0", size[CategoryWeather])
	}
	if len(size) != len(AllCategories) {
		t.Errorf("Size() has %d categories, want %d", len(size), len(AllCategories))
	}
}

func TestCacheDefaultTTL(t *testing.T) {
	clock := newFakeClock()
	c := New(Config{}, WithClock(clock.Now))

	c.Geocode.Set("k", models.Coordinate{})
	clock.Advance(DefaultTTL - time.Nanosecond)
	if _, ok := c.Geocode.Get("k"); !ok {
		t.Error("Expected entry to live for DefaultTTL")
	}
	clock.Advance(time.Nanosecond)
	if _, ok := c.Geocode.Get("k"); ok {
		t.Error("Expected entry to expire after DefaultTTL")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New(Config{TTL: time.Minute})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j%10)
				c.Geocode.Set(key, models.Coordinate{Lat: float64(id)})
				c.Geocode.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if n := c.Geocode.Len(); n != 10 {
		t.Errorf("Expected 10 keys, got %d", n)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"geocode", CategoryGeocode, false},
		{"PLACES", CategoryPlaces, false},
		{" details ", CategoryDetails, false},
		{"route", CategoryRoute, false},
		{"weather", CategoryWeather, false},
		{"tiles", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestGenerateKey(t *testing.T) {
	params := map[string]interface{}{"lat": 29.95, "lng": -90.07, "type": "museum"}

	key1 := GenerateKey("places", params)
	key2 := GenerateKey("places", params)
	if key1 != key2 {
		t.Errorf("Expected same key for same params, got %s and %s", key1, key2)
	}

	key3 := GenerateKey("places", map[string]interface{}{"lat": 29.95, "lng": -90.07, "type": "park"})
	if key1 == key3 {
		t.Error("Expected different keys for different params")
	}
}

func TestCacheBackendName(t *testing.T) {
	if got := New(Config{}).Backend(); got != "memory" {
		t.Errorf("Backend() = %q, want memory", got)
	}
}

func TestCacheValuesDoNotAlias(t *testing.T) {
	t.Parallel()

	c := New(Config{TTL: time.Minute})

	stored := []models.Place{
		{Name: "Cafe Du Monde", PlaceID: "cdm", Types: []string{"cafe"}},
		{Name: "Commander's Palace", PlaceID: "cp"},
	}
	c.Places.Set("nola|restaurant", stored)
	stored[0].Name = "changed after Set"
	stored[0].Types[0] = "changed after Set"

	got, ok := c.Places.Get("nola|restaurant")
	if !ok {
		t.Fatal("Expected places to be cached")
	}
	got[1].Name = "changed after Get"
	got[0].Types[0] = "changed after Get"

	again, _ := c.Places.Get("nola|restaurant")
	if again[0].Name != "Cafe Du Monde" || again[1].Name != "Commander's Palace" {
		t.Errorf("cached names = %q, %q", again[0].Name, again[1].Name)
	}
	if again[0].Types[0] != "cafe" {
		t.Errorf("cached types = %v", again[0].Types)
	}
}

func TestCacheStructValuesDoNotAlias(t *testing.T) {
	t.Parallel()

	c := New(Config{TTL: time.Minute})

	c.Route.Set("a|b", models.RouteSummary{
		Waypoints:   []string{"Baton Rouge, LA"},
		Coordinates: []models.Coordinate{{Lat: 29.95, Lng: -90.07}},
		Legs:        []models.RouteLeg{{StartAddress: "A"}},
	})
	route, _ := c.Route.Get("a|b")
	route.Waypoints[0] = "x"
	route.Coordinates[0].Lat = 0
	route.Legs[0].StartAddress = "x"

	again, _ := c.Route.Get("a|b")
	if again.Waypoints[0] != "Baton Rouge, LA" || again.Coordinates[0].Lat != 29.95 || again.Legs[0].StartAddress != "A" {
		t.Errorf("cached route was mutated: %+v", again)
	}

	c.Details.Set("cdm", models.PlaceDetail{
		OpeningHours: models.WeeklyHours{"Monday: Open 24 hours"},
		Coords:       &models.Coordinate{Lat: 29.957, Lng: -90.062},
	})
	detail, _ := c.Details.Get("cdm")
	detail.OpeningHours[0] = "x"
	detail.Coords.Lat = 0

	cached, _ := c.Details.Get("cdm")
	if cached.OpeningHours[0] != "Monday: Open 24 hours" || cached.Coords.Lat != 29.957 {
		t.Errorf("cached detail was mutated: %+v", cached)
	}
}

func TestCacheCloneKeepsNil(t *testing.T) {
	t.Parallel()

	c := New(Config{TTL: time.Minute})
	c.Places.Set("empty", nil)

	got, ok := c.Places.Get("empty")
	if !ok || got != nil {
		t.Errorf("Get = %v, %v, want nil slice and hit", got, ok)
	}
}
