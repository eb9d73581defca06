// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package middleware provides the infrastructure HTTP middleware of the API.

All middleware has the chi signature func(http.Handler) http.Handler and is
mounted by api.Router:

  - RequestID: X-Request-ID propagation plus request and correlation IDs in
    the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern
  - Compression: gzip for clients sending Accept-Encoding: gzip

CORS, rate limiting and panic recovery come from go-chi/cors, go-chi/httprate
and chi's Recoverer, configured in the api package.
*/
package middleware
