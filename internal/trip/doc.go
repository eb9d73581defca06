// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package trip builds complete road trip plans.

Services:

  - RouteService: driving route summary and decoded polyline (Google Directions)
  - TrafficService: per-stop arrival and departure estimates (Google Distance Matrix)
  - WeatherService: current conditions at each stop (WeatherAPI.com)
  - Planner: runs route, route attractions, traffic, weather and
    recommendations concurrently and assembles a models.TripPlan

Each planner component has its own timeout. A component that fails or times
out is reported in TripPlan.Errors while the others still contribute;
TripPlan.Error is set only when every component failed.
*/
package trip
