// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

// Package models defines the data shared by the planner, the recommendation
// pipeline and the API: places, routes, traffic and weather reports, and the
// assembled TripPlan.
//
// JSON field names are part of the public API. Ratings serialize as a number
// or the string "N/A" when the upstream provided none.
package models
