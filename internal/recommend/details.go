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

// DetailFields are the Place Details fields requested for every place.
var DetailFields = []string{"name", "formatted_address", "formatted_phone_number", "rating", "opening_hours"}

// DetailFetcher loads and caches Place Details.
type DetailFetcher struct {
	api    DetailsAPI
	cache  *cache.Cache
	logger zerolog.Logger
}

// NewDetailFetcher creates a detail fetcher.
func NewDetailFetcher(api DetailsAPI, c *cache.Cache) *DetailFetcher {
	return &DetailFetcher{
		api:    api,
		cache:  c,
		logger: logging.WithComponent("details"),
	}
}

// Fetch loads details for a candidate. The candidate's coordinates are
// attached to the result.
func (f *DetailFetcher) Fetch(ctx context.Context, place models.Place) (models.PlaceDetail, error) {
	detail, err := f.FetchByID(ctx, place.PlaceID)
	if err != nil {
		return models.PlaceDetail{}, err
	}
	coords := place.Coords
	detail.Coords = &coords
	return detail, nil
}

// FetchByID loads details for a place ID. Missing fields are "N/A".
// Failures are not cached.
func (f *DetailFetcher) FetchByID(ctx context.Context, placeID string) (models.PlaceDetail, error) {
	key := "details_" + placeID
	if detail, ok := f.cache.Details.Get(key); ok {
		return detail, nil
	}

	result, err := f.api.PlaceDetails(ctx, placeID, DetailFields)
	if err != nil {
		f.logger.Error().Err(err).Str("place_id", placeID).Msg("Place details failed")
		return models.PlaceDetail{}, fmt.Errorf("place details %s: %w", placeID, err)
	}

	detail := models.PlaceDetail{
		Name:        orNotAvailable(result.Name),
		Address:     orNotAvailable(result.FormattedAddress),
		PhoneNumber: orNotAvailable(result.FormattedPhoneNumber),
		Rating:      models.RatingFromPtr(result.Rating),
		PlaceID:     placeID,
	}
	if result.OpeningHours != nil && len(result.OpeningHours.WeekdayText) > 0 {
		detail.OpeningHours = models.WeeklyHours(result.OpeningHours.WeekdayText)
	}
	if result.Geometry != nil {
		coords := result.Geometry.Location.Coordinate()
		detail.Coords = &coords
	}

	f.cache.Details.Set(key, detail)
	return detail, nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return models.NotAvailable
	}
	return s
}
