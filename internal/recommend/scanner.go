// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"context"
	"sort"

	"github.com/alitto/pond/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/roadtrip/internal/geo"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/metrics"
	"github.com/tomtom215/roadtrip/internal/models"
)

// Scan defaults applied to zero-valued options.
const (
	DefaultScanDistanceMeters = 5000
	DefaultScanPerCategory    = 5
	DefaultScanTotal          = 20
)

// ScanOptions bounds a route scan.
type ScanOptions struct {
	// MaxDistanceMeters is both the search radius and the acceptance distance.
	MaxDistanceMeters int

	// MaxPerCategory caps accepted places per category before merging.
	MaxPerCategory int

	// MaxTotal caps the merged, deduplicated result.
	MaxTotal int
}

func (o ScanOptions) withDefaults() ScanOptions {
	if o.MaxDistanceMeters <= 0 {
		o.MaxDistanceMeters = DefaultScanDistanceMeters
	}
	if o.MaxPerCategory <= 0 {
		o.MaxPerCategory = DefaultScanPerCategory
	}
	if o.MaxTotal <= 0 {
		o.MaxTotal = DefaultScanTotal
	}
	return o
}

// Scanner finds attractions along a route.
type Scanner struct {
	places *PlaceFetcher
	pool   pond.Pool
	wave   int
	step   int
	logger zerolog.Logger
}

// NewScanner creates a scanner with a worker pool of cfg.ScanWorkers.
// Call Close to release the pool.
func NewScanner(places *PlaceFetcher, cfg Config) *Scanner {
	workers := max(cfg.ScanWorkers, 1)
	return &Scanner{
		places: places,
		pool:   pond.NewPool(workers),
		wave:   workers,
		step:   max(cfg.ScanStep, 1),
		logger: logging.WithComponent("scanner"),
	}
}

// Close stops the worker pool after running tasks finish.
func (s *Scanner) Close() {
	s.pool.StopAndWait()
}

// Scan samples route, searches each sample point for every category and
// returns the best places within opts.MaxDistanceMeters of the route.
//
// The result is sorted by rating (descending) and then by distance from the
// route (ascending), holds each place ID at most once and has at most
// opts.MaxTotal entries. Unknown categories are skipped.
func (s *Scanner) Scan(ctx context.Context, route []models.Coordinate, categories []string, opts ScanOptions) []models.RouteAttraction {
	opts = opts.withDefaults()
	types := s.resolveCategories(categories)
	points := geo.Sample(route, s.step)
	if len(types) == 0 || len(points) == 0 {
		metrics.RecordScan(len(points), 0)
		return []models.RouteAttraction{}
	}

	perCategory := make([][]models.RouteAttraction, len(types))
	full := func(c int) bool { return len(perCategory[c]) >= opts.MaxPerCategory }

	for start := 0; start < len(points); start += s.wave {
		if ctx.Err() != nil {
			s.logger.Warn().Err(ctx.Err()).Int("points_scanned", start).Msg("Route scan interrupted")
			break
		}
		end := min(start+s.wave, len(points))

		var pending []int
		for c := range types {
			if !full(c) {
				pending = append(pending, c)
			}
		}
		if len(pending) == 0 {
			break
		}

		// results[i][c] holds the candidates for points[start+i] and types[c].
		results := make([][][]models.Place, end-start)
		group := s.pool.NewGroup()
		for i := range results {
			results[i] = make([][]models.Place, len(types))
			for _, c := range pending {
				group.Submit(func() {
					places, err := s.places.Fetch(ctx, points[start+i], types[c], opts.MaxDistanceMeters)
					if err == nil {
						results[i][c] = places
					}
				})
			}
		}
		if err := group.Wait(); err != nil {
			s.logger.Warn().Err(err).Msg("Route scan wave failed")
		}

		// Accumulate in route order so the outcome matches a sequential scan.
		for i := range results {
			point := points[start+i]
			for _, c := range pending {
				for _, p := range results[i][c] {
					if full(c) {
						break
					}
					d := geo.Haversine(point, p.Coords)
					if d > float64(opts.MaxDistanceMeters) {
						continue
					}
					perCategory[c] = append(perCategory[c], models.RouteAttraction{
						Name:                    p.Name,
						Type:                    types[c],
						Location:                p.Coords,
						Rating:                  p.Rating,
						DistanceFromRouteMeters: d,
						PlaceID:                 p.PlaceID,
					})
				}
			}
		}
	}

	out := mergeAttractions(perCategory, opts.MaxTotal)
	metrics.RecordScan(len(points), len(out))
	return out
}

// resolveCategories normalizes categories, dropping unknown ones and duplicates.
func (s *Scanner) resolveCategories(categories []string) []string {
	types := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		t, ok := models.NormalizePlaceType(c)
		if !ok {
			s.logger.Warn().Str("category", c).Msg("Skipping unknown attraction category")
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	return types
}

// mergeAttractions sorts all categories together and keeps the first
// occurrence of each place ID, up to maxTotal.
func mergeAttractions(perCategory [][]models.RouteAttraction, maxTotal int) []models.RouteAttraction {
	var all []models.RouteAttraction
	for _, list := range perCategory {
		all = append(all, list...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if b.Rating.Less(a.Rating) {
			return true
		}
		if a.Rating.Less(b.Rating) {
			return false
		}
		return a.DistanceFromRouteMeters < b.DistanceFromRouteMeters
	})

	out := make([]models.RouteAttraction, 0, min(len(all), maxTotal))
	seen := make(map[string]struct{}, len(all))
	for _, a := range all {
		if len(out) >= maxTotal {
			break
		}
		if _, dup := seen[a.PlaceID]; dup {
			continue
		}
		seen[a.PlaceID] = struct{}{}
		out = append(out, a)
	}
	return out
}
