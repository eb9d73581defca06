// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/recommend"
	"github.com/tomtom215/roadtrip/internal/trip"
	"github.com/tomtom215/roadtrip/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// TripPlanner is implemented by trip.Planner.
type TripPlanner interface {
	Plan(ctx context.Context, req trip.PlanRequest) *models.TripPlan
}

// Recommender is implemented by recommend.Orchestrator.
type Recommender interface {
	Recommend(ctx context.Context, locations, preferences []string) (map[string]models.Bundle, error)
}

// RouteFinder is implemented by trip.RouteService.
type RouteFinder interface {
	Route(ctx context.Context, origin, destination string, waypoints []string) (*models.RouteSummary, error)
}

// AttractionScanner is implemented by recommend.Scanner.
type AttractionScanner interface {
	Scan(ctx context.Context, route []models.Coordinate, categories []string, opts recommend.ScanOptions) []models.RouteAttraction
}

// CacheAdmin is implemented by cache.Cache.
type CacheAdmin interface {
	Size() map[cache.Category]int
	Clear(categories ...cache.Category)
	Backend() string
}

// BreakerReporter exposes an upstream client's circuit breaker state.
type BreakerReporter interface {
	BreakerState() string
}

// Timeouts bounds the work of each endpoint.
type Timeouts struct {
	PlanTrip         time.Duration
	Recommendations  time.Duration
	RouteAttractions time.Duration
}

// HandlerDeps are the services behind the HTTP handlers.
type HandlerDeps struct {
	Planner     TripPlanner
	Recommender Recommender
	Routes      RouteFinder
	Scanner     AttractionScanner
	Cache       CacheAdmin

	// Upstreams are checked by the readiness probe, keyed by service name.
	Upstreams map[string]BreakerReporter

	Timeouts     Timeouts
	ScanDefaults recommend.ScanOptions

	// Location interprets departure times. Defaults to time.Local.
	Location *time.Location
}

// Handler serves the planning API.
type Handler struct {
	deps      HandlerDeps
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates a handler over deps.
func NewHandler(deps HandlerDeps) *Handler {
	if deps.Location == nil {
		deps.Location = time.Local
	}
	if deps.Timeouts.PlanTrip <= 0 {
		deps.Timeouts.PlanTrip = 60 * time.Second
	}
	if deps.Timeouts.Recommendations <= 0 {
		deps.Timeouts.Recommendations = 45 * time.Second
	}
	if deps.Timeouts.RouteAttractions <= 0 {
		deps.Timeouts.RouteAttractions = 30 * time.Second
	}
	return &Handler{
		deps:      deps,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// Home answers the root banner.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = io.WriteString(w, `{"message":"AI Travel Planner API is running"}`+"\n")
}

// PlanTrip handles POST /api/plan_trip. Partial plans are returned with
// their component errors; a plan where every component failed is a 502.
func (h *Handler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RouteRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	departure, err := trip.ParseDeparture(req.DepartureTime, h.now(), h.deps.Location)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.deps.Timeouts.PlanTrip)
	defer cancel()

	logging.Ctx(ctx).Info().
		Str("origin", sanitizeLogValue(req.Origin)).
		Str("destination", sanitizeLogValue(req.Destination)).
		Int("waypoints", len(req.Waypoints)).
		Msg("Planning trip")

	plan := h.deps.Planner.Plan(ctx, trip.PlanRequest{
		Origin:                strings.TrimSpace(req.Origin),
		Destination:           strings.TrimSpace(req.Destination),
		Waypoints:             trimAll(req.Waypoints),
		Departure:             departure,
		StopDurationsHours:    req.StopDurations,
		AttractionPreferences: req.AttractionPreferences,
	})
	if plan.Error != "" {
		rw.ErrorWithDetails(http.StatusBadGateway, ErrCodeExternalServiceFail, plan.Error, plan.Errors)
		return
	}
	rw.Success(plan)
}

// Recommendations handles POST /api/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RecommendationsRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.deps.Timeouts.Recommendations)
	defer cancel()

	bundles, err := h.deps.Recommender.Recommend(ctx, trimAll(req.Locations), req.Preferences)
	switch {
	case err == nil:
		rw.Success(bundles)
	case errors.Is(err, context.DeadlineExceeded):
		rw.Timeout("recommendations")
	default:
		rw.ExternalServiceError("recommendations", err)
	}
}

// RouteAttractions handles POST /api/route_attractions. It routes the trip
// and scans the decoded polyline for the requested categories.
func (h *Handler) RouteAttractions(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req RouteAttractionsRequest
	if !decodeAndValidate(rw, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.deps.Timeouts.RouteAttractions)
	defer cancel()

	route, err := h.deps.Routes.Route(ctx, strings.TrimSpace(req.Origin), strings.TrimSpace(req.Destination), trimAll(req.Waypoints))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			rw.Timeout("route")
			return
		}
		rw.ExternalServiceError("route", err)
		return
	}

	opts := h.deps.ScanDefaults
	if req.MaxDistanceMeters > 0 {
		opts.MaxDistanceMeters = req.MaxDistanceMeters
	}
	if req.MaxPerCategory > 0 {
		opts.MaxPerCategory = req.MaxPerCategory
	}
	if req.MaxTotal > 0 {
		opts.MaxTotal = req.MaxTotal
	}

	rw.Success(h.deps.Scanner.Scan(ctx, route.Coordinates, req.Categories, opts))
}

// decodeAndValidate reads a JSON body into dst and validates it, writing the
// error response itself. It reports whether the handler should continue.
func decodeAndValidate(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(rw.w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, fmt.Sprintf("request body exceeds %d bytes", maxBodyBytes))
			return false
		}
		rw.BadRequest("invalid JSON body: " + err.Error())
		return false
	}
	if verr := validation.ValidateStruct(dst); verr != nil {
		logging.Ctx(r.Context()).Debug().Str("error", sanitizeLogValue(verr.Error())).Msg("Request validation failed")
		rw.ValidationError(verr)
		return false
	}
	return true
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

// sanitizeLogValue escapes control characters so request values cannot
// forge log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
