// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package trip

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/metrics"
	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/recommend"
)

// Planner component names, used as keys of TripPlan.Errors.
const (
	ComponentRoute            = "route"
	ComponentRouteAttractions = "route_attractions"
	ComponentTraffic          = "traffic"
	ComponentWeather          = "weather"
	ComponentRecommendations  = "recommendations"
)

var errRouteUnavailable = errors.New("route unavailable")

// Timeouts bounds each planner component independently.
type Timeouts struct {
	Route            time.Duration
	Traffic          time.Duration
	Weather          time.Duration
	Recommendations  time.Duration
	RouteAttractions time.Duration
}

// DefaultTimeouts returns the production component timeouts.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Route:            15 * time.Second,
		Traffic:          20 * time.Second,
		Weather:          15 * time.Second,
		Recommendations:  45 * time.Second,
		RouteAttractions: 30 * time.Second,
	}
}

// PlannerConfig configures the Planner.
type PlannerConfig struct {
	Timeouts Timeouts

	// DefaultPreferences apply when a request names no attraction preferences.
	DefaultPreferences []string

	// Scan bounds the route attraction scan.
	Scan recommend.ScanOptions
}

// RouteProvider is implemented by RouteService.
type RouteProvider interface {
	Route(ctx context.Context, origin, destination string, waypoints []string) (*models.RouteSummary, error)
}

// TrafficEstimator is implemented by TrafficService.
type TrafficEstimator interface {
	Estimate(ctx context.Context, req TrafficRequest) (*models.TrafficReport, error)
}

// WeatherProvider is implemented by WeatherService.
type WeatherProvider interface {
	ForStops(ctx context.Context, stops []string) map[string]models.WeatherReport
}

// PlanRequest is a trip to plan.
type PlanRequest struct {
	Origin                string
	Destination           string
	Waypoints             []string
	Departure             time.Time
	StopDurationsHours    []int
	AttractionPreferences []string
}

// Planner assembles trip plans from the individual services.
type Planner struct {
	cfg         PlannerConfig
	routes      RouteProvider
	traffic     TrafficEstimator
	weather     WeatherProvider
	recommender Recommender
	scanner     AttractionScanner
}

// NewPlanner creates a planner.
func NewPlanner(cfg PlannerConfig, routes RouteProvider, traffic TrafficEstimator, weather WeatherProvider,
	recommender Recommender, scanner AttractionScanner) *Planner {
	if cfg.Timeouts == (Timeouts{}) {
		cfg.Timeouts = DefaultTimeouts()
	}
	return &Planner{
		cfg:         cfg,
		routes:      routes,
		traffic:     traffic,
		weather:     weather,
		recommender: recommender,
		scanner:     scanner,
	}
}

// Plan runs every component concurrently, each under its own timeout, and
// always returns a plan. Component failures are reported in plan.Errors.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) *models.TripPlan {
	log := logging.CtxWith(ctx).Str("component", "planner").Logger()

	plan := &models.TripPlan{
		Weather:          map[string]models.WeatherReport{},
		Recommendations:  map[string]models.Bundle{},
		RouteAttractions: []models.RouteAttraction{},
	}
	var mu sync.Mutex
	failed := 0
	fail := func(component string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if plan.Errors == nil {
			plan.Errors = make(map[string]string)
		}
		plan.Errors[component] = err.Error()
		failed++
		metrics.PlannerComponentErrors.WithLabelValues(component).Inc()
		log.Warn().Err(err).Str("failed_component", component).Msg("Trip component failed")
	}

	prefs := req.AttractionPreferences
	if len(prefs) == 0 {
		prefs = p.cfg.DefaultPreferences
	}

	g := new(errgroup.Group)

	g.Go(func() error {
		route, err := p.route(ctx, req)
		if err != nil {
			fail(ComponentRoute, err)
			fail(ComponentRouteAttractions, errRouteUnavailable)
			return nil
		}
		mu.Lock()
		plan.Route = route
		mu.Unlock()

		attractions, err := p.routeAttractions(ctx, route, prefs)
		if err != nil {
			fail(ComponentRouteAttractions, err)
		}
		mu.Lock()
		plan.RouteAttractions = attractions
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		cctx, cancel := context.WithTimeout(ctx, p.cfg.Timeouts.Traffic)
		defer cancel()
		report, err := p.traffic.Estimate(cctx, TrafficRequest{
			Origin:             req.Origin,
			Destination:        req.Destination,
			Waypoints:          req.Waypoints,
			Departure:          req.Departure,
			StopDurationsHours: req.StopDurationsHours,
		})
		if err != nil {
			fail(ComponentTraffic, timeoutAware(cctx, err, p.cfg.Timeouts.Traffic))
			return nil
		}
		mu.Lock()
		plan.Traffic = report
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		cctx, cancel := context.WithTimeout(ctx, p.cfg.Timeouts.Weather)
		defer cancel()
		stops := make([]string, 0, len(req.Waypoints)+2)
		stops = append(stops, req.Origin)
		stops = append(stops, req.Waypoints...)
		stops = append(stops, req.Destination)

		reports := p.weather.ForStops(cctx, stops)
		if allFailed(reports) {
			fail(ComponentWeather, timeoutAware(cctx, errors.New("weather unavailable for every stop"), p.cfg.Timeouts.Weather))
		}
		mu.Lock()
		plan.Weather = reports
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		cctx, cancel := context.WithTimeout(ctx, p.cfg.Timeouts.Recommendations)
		defer cancel()
		locations := req.Waypoints
		if len(locations) == 0 {
			locations = []string{req.Destination}
		}
		bundles, err := p.recommender.Recommend(cctx, locations, prefs)
		if err != nil {
			fail(ComponentRecommendations, timeoutAware(cctx, err, p.cfg.Timeouts.Recommendations))
		}
		if bundles != nil {
			mu.Lock()
			plan.Recommendations = bundles
			mu.Unlock()
		}
		return nil
	})

	_ = g.Wait()

	if failed == 5 {
		plan.Error = ErrPlanFailed.Error()
	}
	return plan
}

func (p *Planner) route(ctx context.Context, req PlanRequest) (*models.RouteSummary, error) {
	cctx, cancel := context.WithTimeout(ctx, p.cfg.Timeouts.Route)
	defer cancel()
	route, err := p.routes.Route(cctx, req.Origin, req.Destination, req.Waypoints)
	if err != nil {
		return nil, timeoutAware(cctx, err, p.cfg.Timeouts.Route)
	}
	return route, nil
}

func (p *Planner) routeAttractions(ctx context.Context, route *models.RouteSummary, prefs []string) ([]models.RouteAttraction, error) {
	cctx, cancel := context.WithTimeout(ctx, p.cfg.Timeouts.RouteAttractions)
	defer cancel()
	attractions := p.scanner.Scan(cctx, route.Coordinates, prefs, p.cfg.Scan)
	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		return attractions, fmt.Errorf("timed out after %s, results are partial", p.cfg.Timeouts.RouteAttractions)
	}
	return attractions, nil
}

// timeoutAware replaces err with a timeout message when ctx expired.
func timeoutAware(ctx context.Context, err error, limit time.Duration) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("timed out after %s: %w", limit, err)
	}
	return err
}

func allFailed(reports map[string]models.WeatherReport) bool {
	for _, r := range reports {
		if r.Error == "" {
			return false
		}
	}
	return true
}
