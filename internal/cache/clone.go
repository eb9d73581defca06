// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"slices"

	"github.com/tomtom215/roadtrip/internal/models"
)

// Copy functions for the categories whose values share memory through
// slices or pointers. Nil stays nil so JSON output does not change.

func clonePlaces(places []models.Place) []models.Place {
	out := slices.Clone(places)
	for i := range out {
		out[i].Types = slices.Clone(out[i].Types)
	}
	return out
}

func cloneDetail(d models.PlaceDetail) models.PlaceDetail {
	d.OpeningHours = slices.Clone(d.OpeningHours)
	d.Coords = cloneCoord(d.Coords)
	return d
}

func cloneRoute(r models.RouteSummary) models.RouteSummary {
	r.Legs = slices.Clone(r.Legs)
	r.Waypoints = slices.Clone(r.Waypoints)
	r.Coordinates = slices.Clone(r.Coordinates)
	return r
}

func cloneWeather(w models.WeatherReport) models.WeatherReport {
	w.Coords = cloneCoord(w.Coords)
	return w
}

func cloneCoord(c *models.Coordinate) *models.Coordinate {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}
