// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package api

import (
	"net/http"
	"sort"
	"time"
)

// breakerOpen is the state string reported by an open circuit breaker.
const breakerOpen = "open"

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of upstream state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 503 while any upstream circuit breaker is open, since no request
// could then be fully served.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	names := make([]string, 0, len(h.deps.Upstreams))
	for name := range h.deps.Upstreams {
		names = append(names, name)
	}
	sort.Strings(names)

	states := make(map[string]string, len(names))
	var open []string
	for _, name := range names {
		state := h.deps.Upstreams[name].BreakerState()
		states[name] = state
		if state == breakerOpen {
			open = append(open, name)
		}
	}

	if len(open) > 0 {
		rw.ServiceUnavailable("upstream circuit open", map[string]interface{}{
			"open":     open,
			"breakers": states,
		})
		return
	}

	rw.Success(map[string]interface{}{
		"ready":    true,
		"breakers": states,
	})
}
