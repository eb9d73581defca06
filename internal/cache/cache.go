// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/models"
)

// DefaultTTL is the lifetime of every cache entry unless configured otherwise.
const DefaultTTL = time.Hour

// Config configures the cache.
type Config struct {
	// TTL is the lifetime shared by all categories. Zero means DefaultTTL.
	TTL time.Duration
}

// Option customizes a Cache.
type Option func(*options)

type options struct {
	ttl    time.Duration
	clock  func() time.Time
	tier   Tier
	logger zerolog.Logger
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithTier adds a persistent tier behind the in-memory stores.
func WithTier(tier Tier) Option {
	return func(o *options) {
		o.tier = tier
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Cache is the process-wide response cache. Each category is an independent
// typed store; there is no global instance, callers inject the Cache.
type Cache struct {
	Geocode *Store[models.Coordinate]
	Places  *Store[[]models.Place]
	Details *Store[models.PlaceDetail]
	Route   *Store[models.RouteSummary]
	Weather *Store[models.WeatherReport]

	tier Tier
}

// New creates a cache with one store per category.
//
// Example:
//
//	c := cache.New(cache.Config{TTL: time.Hour})
//	c.Geocode.Set("New Orleans, LA", models.Coordinate{Lat: 29.95, Lng: -90.07})
//	if coord, ok := c.Geocode.Get("New Orleans, LA"); ok {
//	    // use coord
//	}
func New(cfg Config, opts ...Option) *Cache {
	o := &options{
		ttl:    cfg.TTL,
		clock:  time.Now,
		logger: logging.WithComponent("cache"),
	}
	if o.ttl <= 0 {
		o.ttl = DefaultTTL
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Cache{
		Geocode: newStore[models.Coordinate](CategoryGeocode, o, nil),
		Places:  newStore(CategoryPlaces, o, clonePlaces),
		Details: newStore(CategoryDetails, o, cloneDetail),
		Route:   newStore(CategoryRoute, o, cloneRoute),
		Weather: newStore(CategoryWeather, o, cloneWeather),
		tier:    o.tier,
	}
}

// Size returns the number of in-memory entries per category.
func (c *Cache) Size() map[Category]int {
	return map[Category]int{
		CategoryGeocode: c.Geocode.Len(),
		CategoryPlaces:  c.Places.Len(),
		CategoryDetails: c.Details.Len(),
		CategoryRoute:   c.Route.Len(),
		CategoryWeather: c.Weather.Len(),
	}
}

// Clear empties the given categories, or every category when none are given.
// Other categories are untouched.
func (c *Cache) Clear(categories ...Category) {
	if len(categories) == 0 {
		categories = AllCategories
	}
	for _, category := range categories {
		switch category {
		case CategoryGeocode:
			c.Geocode.clear()
		case CategoryPlaces:
			c.Places.clear()
		case CategoryDetails:
			c.Details.clear()
		case CategoryRoute:
			c.Route.clear()
		case CategoryWeather:
			c.Weather.clear()
		}
	}
}

// Backend names the persistent tier, or "memory" when there is none.
func (c *Cache) Backend() string {
	if c.tier == nil {
		return "memory"
	}
	return c.tier.Name()
}

// Close releases the persistent tier if one is configured.
func (c *Cache) Close() error {
	if c.tier == nil {
		return nil
	}
	return c.tier.Close()
}

// GenerateKey creates a cache key from the method name and parameters
func GenerateKey(method string, params interface{}) string {
	// Serialize parameters to JSON
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s:%v", method, params)
	}

	// Hash the JSON data for a compact key
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
