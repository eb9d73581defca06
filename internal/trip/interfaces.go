// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package trip

import (
	"context"

	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/recommend"
	"github.com/tomtom215/roadtrip/internal/upstream"
)

// DirectionsAPI is implemented by upstream.GoogleClient.
type DirectionsAPI interface {
	Directions(ctx context.Context, req upstream.DirectionsRequest) ([]upstream.Route, error)
}

// MatrixAPI is implemented by upstream.GoogleClient.
type MatrixAPI interface {
	DistanceMatrix(ctx context.Context, req upstream.MatrixRequest) (*upstream.DistanceMatrix, error)
}

// WeatherAPI is implemented by upstream.WeatherClient.
type WeatherAPI interface {
	Current(ctx context.Context, query string) (*upstream.CurrentWeather, error)
}

// Resolver geocodes stop names. Implemented by recommend.Geocoder.
type Resolver interface {
	Resolve(ctx context.Context, address string) (models.Coordinate, error)
}

// Recommender is implemented by recommend.Orchestrator.
type Recommender interface {
	Recommend(ctx context.Context, locations, preferences []string) (map[string]models.Bundle, error)
}

// AttractionScanner is implemented by recommend.Scanner.
type AttractionScanner interface {
	Scan(ctx context.Context, route []models.Coordinate, categories []string, opts recommend.ScanOptions) []models.RouteAttraction
}

var (
	_ DirectionsAPI     = (*upstream.GoogleClient)(nil)
	_ MatrixAPI         = (*upstream.GoogleClient)(nil)
	_ WeatherAPI        = (*upstream.WeatherClient)(nil)
	_ Resolver          = (*recommend.Geocoder)(nil)
	_ Recommender       = (*recommend.Orchestrator)(nil)
	_ AttractionScanner = (*recommend.Scanner)(nil)
)
