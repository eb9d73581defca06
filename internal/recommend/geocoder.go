// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/models"
)

// Geocoder resolves free-form addresses to coordinates.
type Geocoder struct {
	api    GeocodeAPI
	cache  *cache.Cache
	logger zerolog.Logger
}

// NewGeocoder creates a geocoder backed by the given API and cache.
func NewGeocoder(api GeocodeAPI, c *cache.Cache) *Geocoder {
	return &Geocoder{
		api:    api,
		cache:  c,
		logger: logging.WithComponent("geocoder"),
	}
}

// Resolve returns the first geocoding result for address.
// The cache is keyed by the raw address string.
func (g *Geocoder) Resolve(ctx context.Context, address string) (models.Coordinate, error) {
	if coord, ok := g.cache.Geocode.Get(address); ok {
		return coord, nil
	}

	results, err := g.api.Geocode(ctx, address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", address).Msg("Geocoding failed")
		return models.Coordinate{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		g.logger.Warn().Str("address", address).Msg("Geocoding returned no results")
		return models.Coordinate{}, fmt.Errorf("geocode %q: %w", address, ErrNoResults)
	}

	coord := results[0].Geometry.Location.Coordinate()
	g.cache.Geocode.Set(address, coord)
	return coord, nil
}
