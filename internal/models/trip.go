// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package models

// RouteLeg is one origin-to-stop segment of a driving route.
type RouteLeg struct {
	StartAddress string `json:"start_address"`
	EndAddress   string `json:"end_address"`
	DistanceText string `json:"distance_text"`
	DurationText string `json:"duration_text"`
}

// RouteSummary is the condensed view of a Directions response.
type RouteSummary struct {
	TotalDistanceMiles float64      `json:"total_distance_miles"`
	TotalDistanceText  string       `json:"total_distance_text"`
	EstimatedTimeHours float64      `json:"estimated_time_hours"`
	EstimatedTimeText  string       `json:"estimated_time_text"`
	Polyline           string       `json:"polyline"`
	Legs               []RouteLeg   `json:"legs"`
	Waypoints          []string     `json:"waypoints"`
	Coordinates        []Coordinate `json:"coordinates"`
}

// TrafficStop is the estimated schedule at one stop of the trip.
type TrafficStop struct {
	Stop              string      `json:"stop"`
	ArrivalDateTime   string      `json:"arrival_date_time"`
	DepartureDateTime string      `json:"departure_date_time"`
	TravelTime        string      `json:"travel_time"`
	StopDuration      string      `json:"stop_duration"`
	Coords            *Coordinate `json:"coords"`
}

// TrafficReport is the per-stop schedule plus an overall traffic condition.
type TrafficReport struct {
	EstimatedStops    []TrafficStop `json:"estimated_stops"`
	TotalDurationText string        `json:"total_duration_text"`
	Condition         string        `json:"traffic_status"`
}

// WeatherReport is the current weather at a stop. When the lookup failed only
// Error is set.
type WeatherReport struct {
	Location     string      `json:"location,omitempty"`
	Region       string      `json:"region,omitempty"`
	Country      string      `json:"country,omitempty"`
	Temperature  string      `json:"temperature,omitempty"`
	TemperatureC string      `json:"temperature_c,omitempty"`
	Condition    string      `json:"condition,omitempty"`
	Humidity     string      `json:"humidity,omitempty"`
	WindSpeedMph string      `json:"wind_speed_mph,omitempty"`
	WindSpeedKph string      `json:"wind_speed_kph,omitempty"`
	Coords       *Coordinate `json:"coords,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// TripPlan is the aggregated response of the trip planner. Components that
// failed or timed out are reported in Errors; Error is set only when nothing
// could be produced.
type TripPlan struct {
	Route            *RouteSummary            `json:"route,omitempty"`
	Traffic          *TrafficReport           `json:"traffic,omitempty"`
	Weather          map[string]WeatherReport `json:"weather"`
	Recommendations  map[string]Bundle        `json:"recommendations"`
	RouteAttractions []RouteAttraction        `json:"route_attractions"`
	Errors           map[string]string        `json:"errors,omitempty"`
	Error            string                   `json:"error,omitempty"`
}
