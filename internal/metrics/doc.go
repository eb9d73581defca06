// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package metrics provides Prometheus metrics collection and export for observability.

Every collector name carries the roadtrip_ prefix. Collectors are registered on the default registry with promauto and exposed at
/metrics by the API router through promhttp.

# Available Metrics

API:
  - roadtrip_api_requests_total{method, endpoint, status_code}
  - roadtrip_api_request_duration_seconds{method, endpoint}
  - roadtrip_api_active_requests

Cache:
  - roadtrip_cache_hits_total{category, tier}
  - roadtrip_cache_misses_total{category}
  - roadtrip_cache_entries{category}
  - roadtrip_cache_evictions_total{category}
  - roadtrip_cache_tier_errors_total{backend, operation}

Upstream APIs:
  - roadtrip_upstream_requests_total{service, operation, result}
  - roadtrip_upstream_request_duration_seconds{service, operation}
  - roadtrip_circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - roadtrip_circuit_breaker_requests_total{name, result}
  - roadtrip_circuit_breaker_state_transitions_total{name, from_state, to_state}

Recommendations:
  - roadtrip_ranker_outcomes_total{category, outcome}
  - roadtrip_recommendation_duration_seconds
  - roadtrip_route_scanner_points_total
  - roadtrip_route_scanner_attractions
  - roadtrip_planner_component_errors_total{component}

Example PromQL:

	# Cache hit rate for geocoding
	sum(rate(roadtrip_cache_hits_total{category="geocode"}[5m])) /
	  (sum(rate(roadtrip_cache_hits_total{category="geocode"}[5m])) + sum(rate(roadtrip_cache_misses_total{category="geocode"}[5m])))

	# Share of rankings that fell back to upstream order
	sum(rate(roadtrip_ranker_outcomes_total{outcome!="matched"}[1h])) / sum(rate(roadtrip_ranker_outcomes_total[1h]))

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
