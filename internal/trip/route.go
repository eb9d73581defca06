// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package trip

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/geo"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/upstream"
)

// RouteService fetches and summarizes driving routes.
type RouteService struct {
	api    DirectionsAPI
	cache  *cache.Cache
	logger zerolog.Logger
}

// NewRouteService creates a route service.
func NewRouteService(api DirectionsAPI, c *cache.Cache) *RouteService {
	return &RouteService{
		api:    api,
		cache:  c,
		logger: logging.WithComponent("route"),
	}
}

type routeKey struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Waypoints   []string `json:"waypoints"`
}

// Route returns the summary of the first driving route from origin to
// destination through waypoints, departing now.
func (s *RouteService) Route(ctx context.Context, origin, destination string, waypoints []string) (*models.RouteSummary, error) {
	key := cache.GenerateKey("route", routeKey{Origin: origin, Destination: destination, Waypoints: waypoints})
	if summary, ok := s.cache.Route.Get(key); ok {
		return &summary, nil
	}

	routes, err := s.api.Directions(ctx, upstream.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Waypoints:   waypoints,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("origin", origin).Str("destination", destination).Msg("Directions request failed")
		return nil, fmt.Errorf("route %s to %s: %w", origin, destination, err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, fmt.Errorf("route %s to %s: %w", origin, destination, ErrNoRoute)
	}

	summary := s.summarize(&routes[0])
	s.cache.Route.Set(key, summary)
	return &summary, nil
}

func (s *RouteService) summarize(route *upstream.Route) models.RouteSummary {
	var meters, seconds int64
	legs := make([]models.RouteLeg, 0, len(route.Legs))
	waypoints := make([]string, 0, len(route.Legs))
	for i, leg := range route.Legs {
		meters += leg.Distance.Value
		seconds += leg.Duration.Value
		legs = append(legs, models.RouteLeg{
			StartAddress: leg.StartAddress,
			EndAddress:   leg.EndAddress,
			DistanceText: leg.Distance.Text,
			DurationText: leg.Duration.Text,
		})
		if i < len(route.Legs)-1 {
			waypoints = append(waypoints, leg.EndAddress)
		}
	}

	coords, err := geo.DecodePolyline(route.OverviewPolyline.Points)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Could not decode route polyline")
		coords = nil
	}
	if coords == nil {
		coords = []models.Coordinate{}
	}

	miles := round2(float64(meters) * metersToMiles)
	return models.RouteSummary{
		TotalDistanceMiles: miles,
		TotalDistanceText:  models.FormatDecimal(miles) + " miles",
		EstimatedTimeHours: round2(float64(seconds) / 3600),
		EstimatedTimeText:  hoursMinutes(seconds),
		Polyline:           route.OverviewPolyline.Points,
		Legs:               legs,
		Waypoints:          waypoints,
		Coordinates:        coords,
	}
}
