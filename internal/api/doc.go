// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package api provides the HTTP REST API layer for Roadtrip.

Endpoints:

	GET    /                         banner
	POST   /api/plan_trip            full trip plan (route, traffic, weather, recommendations)
	POST   /api/recommendations      restaurants, hotels and attractions per location
	POST   /api/route_attractions    places along a driving route
	GET    /api/health/live          liveness
	GET    /api/health/ready         readiness (503 while an upstream breaker is open)
	GET    /api/cache                entries per cache category
	DELETE /api/cache?category=      clear one category, or all of them
	GET    /metrics                  Prometheus

Every /api response uses the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 12}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "origin is required", ...}}

Request bodies are decoded with goccy/go-json and validated with the
go-playground/validator tags on the request structs. A trip plan with some
failed components is still a 200 and lists the failures in its "errors"
field; only a plan where every component failed is a 502.

Middleware order: request ID, RealIP, Recoverer, CORS, then per group the
httprate limiter, security headers, Prometheus and gzip.
*/
package api
