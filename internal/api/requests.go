// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package api

// Request bodies of the planning endpoints. Field names in validation
// errors are the JSON names.

// RouteRequest is the body of POST /api/plan_trip.
//
// Fields:
//   - DepartureTime: "now" (default) or YYYY-MM-DD HH:MM in server local time
//   - StopDurations: hours spent at each waypoint, in order
//   - AttractionPreferences: place types, aliases such as "hotel" accepted
type RouteRequest struct {
	Origin                string   `json:"origin" validate:"required,notblank,max=500"`
	Destination           string   `json:"destination" validate:"required,notblank,max=500"`
	Waypoints             []string `json:"waypoints" validate:"omitempty,max=25,dive,notblank,max=500"`
	DepartureTime         string   `json:"departure_time" validate:"omitempty,departure_time"`
	StopDurations         []int    `json:"stop_durations" validate:"omitempty,dive,gte=0,lte=720"`
	AttractionPreferences []string `json:"attraction_preferences" validate:"omitempty,max=20,dive,place_type"`
}

// RecommendationsRequest is the body of POST /api/recommendations.
type RecommendationsRequest struct {
	Locations   []string `json:"locations" validate:"required,min=1,max=25,dive,notblank,max=500"`
	Preferences []string `json:"preferences" validate:"omitempty,max=20,dive,place_type"`
}

// RouteAttractionsRequest is the body of POST /api/route_attractions.
// Zero limits fall back to the scanner configuration.
type RouteAttractionsRequest struct {
	Origin            string   `json:"origin" validate:"required,notblank,max=500"`
	Destination       string   `json:"destination" validate:"required,notblank,max=500"`
	Waypoints         []string `json:"waypoints" validate:"omitempty,max=25,dive,notblank,max=500"`
	Categories        []string `json:"categories" validate:"required,min=1,max=20,dive,place_type"`
	MaxDistanceMeters int      `json:"max_distance_meters" validate:"omitempty,min=100,max=50000"`
	MaxPerCategory    int      `json:"max_per_category" validate:"omitempty,min=1,max=50"`
	MaxTotal          int      `json:"max_total" validate:"omitempty,min=1,max=200"`
}
