// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/upstream"
)

// PlaceFetcher runs Nearby Searches and converts results to candidates.
type PlaceFetcher struct {
	api    PlacesAPI
	cache  *cache.Cache
	logger zerolog.Logger
}

// NewPlaceFetcher creates a place fetcher.
func NewPlaceFetcher(api PlacesAPI, c *cache.Cache) *PlaceFetcher {
	return &PlaceFetcher{
		api:    api,
		cache:  c,
		logger: logging.WithComponent("places"),
	}
}

// placesKey identifies one Nearby Search. Coordinates are rounded to about a
// meter so that equivalent searches share an entry.
type placesKey struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Type   string  `json:"type"`
	Radius int     `json:"radius"`
}

func newPlacesKey(coord models.Coordinate, category string, radius int) string {
	return cache.GenerateKey("places", placesKey{
		Lat:    math.Round(coord.Lat*1e5) / 1e5,
		Lng:    math.Round(coord.Lng*1e5) / 1e5,
		Type:   category,
		Radius: radius,
	})
}

// Fetch returns up to MaxCandidates places of the given type within
// radiusMeters of coord, in upstream order. Results without a place ID are
// dropped. On a transport failure it returns a nil slice and the error.
func (f *PlaceFetcher) Fetch(ctx context.Context, coord models.Coordinate, category string, radiusMeters int) ([]models.Place, error) {
	key := newPlacesKey(coord, category, radiusMeters)
	if places, ok := f.cache.Places.Get(key); ok {
		return places, nil
	}

	results, err := f.api.NearbySearch(ctx, upstream.NearbyRequest{
		Location: coord,
		Radius:   radiusMeters,
		Type:     category,
	})
	if err != nil {
		f.logger.Error().Err(err).
			Str("location", coord.String()).
			Str("type", category).
			Msg("Nearby search failed")
		return nil, fmt.Errorf("nearby search %s near %s: %w", category, coord, err)
	}

	places := make([]models.Place, 0, min(len(results), MaxCandidates))
	for i := range results {
		r := &results[i]
		if r.PlaceID == "" {
			continue
		}
		places = append(places, models.Place{
			Name:     r.Name,
			PlaceID:  r.PlaceID,
			Coords:   r.Geometry.Location.Coordinate(),
			Rating:   models.RatingFromPtr(r.Rating),
			Types:    r.Types,
			Vicinity: r.Vicinity,
		})
		if len(places) == MaxCandidates {
			break
		}
	}

	f.cache.Places.Set(key, places)
	return places, nil
}
