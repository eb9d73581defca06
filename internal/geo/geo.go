// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

// Package geo provides the small amount of spherical geometry the planner
// needs: great-circle distances, route sampling and decoding of encoded route
// polylines.
package geo

import (
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"github.com/tomtom215/roadtrip/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used by Haversine.
const EarthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance in meters between a and b.
func Haversine(a, b models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DecodePolyline decodes a Google encoded polyline (precision 1e5).
// An empty string decodes to an empty slice.
func DecodePolyline(encoded string) ([]models.Coordinate, error) {
	latlngs, err := maps.DecodePolyline(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	points := make([]models.Coordinate, 0, len(latlngs))
	for _, ll := range latlngs {
		points = append(points, models.Coordinate{Lat: ll.Lat, Lng: ll.Lng})
	}
	return points, nil
}

// Sample thins a route for nearby searches: it drops the first floor(n/10)
// points and then keeps every step-th point of the remainder.
func Sample(points []models.Coordinate, step int) []models.Coordinate {
	if step < 1 {
		step = 1
	}
	skip := len(points) / 10
	rest := points[skip:]
	out := make([]models.Coordinate, 0, len(rest)/step+1)
	for i := 0; i < len(rest); i += step {
		out = append(out, rest[i])
	}
	return out
}
