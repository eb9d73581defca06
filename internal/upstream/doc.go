// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package upstream provides clients for the third-party services the planner
depends on:

  - GoogleClient: Geocoding, Places Nearby Search, Place Details,
    Directions and Distance Matrix, through googlemaps.github.io/maps
  - WeatherClient: WeatherAPI.com current conditions
  - ChatClient: Azure OpenAI or OpenAI chat completions, through
    github.com/openai/openai-go

The SDK clients are handed an *http.Client whose transport is the
requester, so every service shares the same behavior:

  - optional client-side throttling with golang.org/x/time/rate
  - exponential backoff on HTTP 429, honoring Retry-After
  - error bodies read through a 64KB limit
  - one sony/gobreaker circuit breaker per service; ErrNotFound and context
    cancellation do not count as failures
  - Prometheus metrics per service and operation

Errors are prefixed once with the service and operation name. Use errors.Is with
ErrNotFound or ErrRateLimited, and errors.As with *APIStatusError or
*HTTPStatusError to inspect them.
*/
package upstream
