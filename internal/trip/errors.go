// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package trip

import "errors"

var (
	// ErrNoRoute is returned when Directions finds no route.
	ErrNoRoute = errors.New("no route found")

	// ErrPlanFailed is reported when no planner component produced data.
	ErrPlanFailed = errors.New("failed to process the trip request")
)
