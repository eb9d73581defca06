// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/metrics"
	"github.com/tomtom215/roadtrip/internal/models"
)

// Orchestrator assembles recommendation bundles for trip locations.
type Orchestrator struct {
	cfg      Config
	geocoder *Geocoder
	places   *PlaceFetcher
	details  *DetailFetcher
	ranker   *Ranker
	logger   zerolog.Logger
}

// NewOrchestrator wires the pipeline components together.
func NewOrchestrator(cfg Config, geocoder *Geocoder, places *PlaceFetcher, details *DetailFetcher, ranker *Ranker) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		geocoder: geocoder,
		places:   places,
		details:  details,
		ranker:   ranker,
		logger:   logging.WithComponent("recommend"),
	}
}

// Recommend builds a bundle for each location. Locations that cannot be
// geocoded are omitted, and a category whose fetch fails is left empty.
// Empty preferences fall back to the configured defaults.
//
// ErrNoRecommendations is returned, with an empty map, only when locations
// were requested and none produced a bundle. If ctx ended first, the error
// also wraps ctx.Err().
func (o *Orchestrator) Recommend(ctx context.Context, locations, preferences []string) (map[string]models.Bundle, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	}()

	prefs := o.resolvePreferences(preferences)
	result := make(map[string]models.Bundle, len(locations))

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(o.cfg.LocationConcurrency)
	for _, location := range uniqueStrings(locations) {
		g.Go(func() error {
			bundle, ok := o.recommendLocation(ctx, location, prefs)
			if !ok {
				return nil
			}
			mu.Lock()
			result[location] = bundle
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(locations) > 0 && len(result) == 0 {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("%w: %w", ErrNoRecommendations, err)
		}
		return result, ErrNoRecommendations
	}
	return result, nil
}

func (o *Orchestrator) recommendLocation(ctx context.Context, location string, prefs []string) (models.Bundle, bool) {
	log := logging.CtxWith(ctx).Str("component", "recommend").Str("location", location).Logger()

	coord, err := o.geocoder.Resolve(ctx, location)
	if err != nil {
		log.Warn().Err(err).Msg("Skipping location that could not be geocoded")
		return models.Bundle{}, false
	}

	bundle := models.Bundle{
		Restaurants: []models.PlaceDetail{},
		Hotels:      []models.PlaceDetail{},
		Attractions: []models.PlaceDetail{},
	}

	g := new(errgroup.Group)
	g.Go(func() error {
		bundle.Restaurants = o.rankedDetails(ctx, coord, models.PlaceTypeRestaurant, "restaurants")
		return nil
	})
	g.Go(func() error {
		bundle.Hotels = o.rankedDetails(ctx, coord, models.PlaceTypeLodging, "hotels")
		return nil
	})
	g.Go(func() error {
		bundle.Attractions = o.fetchDetails(ctx, o.attractions(ctx, coord, prefs))
		return nil
	})
	_ = g.Wait()

	log.Debug().
		Int("restaurants", len(bundle.Restaurants)).
		Int("hotels", len(bundle.Hotels)).
		Int("attractions", len(bundle.Attractions)).
		Msg("Location recommendations ready")
	return bundle, true
}

// rankedDetails fetches one place type, AI-ranks the leading candidates and
// loads their details.
func (o *Orchestrator) rankedDetails(ctx context.Context, coord models.Coordinate, placeType, label string) []models.PlaceDetail {
	candidates, err := o.places.Fetch(ctx, coord, placeType, o.cfg.SearchRadiusMeters)
	if err != nil || len(candidates) == 0 {
		return []models.PlaceDetail{}
	}
	if len(candidates) > o.cfg.RankPoolSize {
		candidates = candidates[:o.cfg.RankPoolSize]
	}
	return o.fetchDetails(ctx, o.ranker.Rank(ctx, candidates, label))
}

// attractions takes the leading places for each preference, merges them by
// place ID and, when over the limit, keeps the best rated.
func (o *Orchestrator) attractions(ctx context.Context, coord models.Coordinate, prefs []string) []models.Place {
	perPref := make([][]models.Place, len(prefs))
	g := new(errgroup.Group)
	for i, pref := range prefs {
		g.Go(func() error {
			places, err := o.places.Fetch(ctx, coord, pref, o.cfg.SearchRadiusMeters)
			if err != nil {
				return nil
			}
			perPref[i] = places[:min(len(places), o.cfg.AttractionsPerPreference)]
			return nil
		})
	}
	_ = g.Wait()

	var merged []models.Place
	seen := make(map[string]struct{})
	for _, places := range perPref {
		for _, p := range places {
			if _, dup := seen[p.PlaceID]; dup {
				continue
			}
			seen[p.PlaceID] = struct{}{}
			merged = append(merged, p)
		}
	}

	if len(merged) > o.cfg.MaxAttractions {
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[j].Rating.Less(merged[i].Rating)
		})
		merged = merged[:o.cfg.MaxAttractions]
	}
	return merged
}

// fetchDetails loads details for places concurrently, keeping input order.
// Places whose details cannot be loaded are dropped.
func (o *Orchestrator) fetchDetails(ctx context.Context, places []models.Place) []models.PlaceDetail {
	details := make([]*models.PlaceDetail, len(places))
	g := new(errgroup.Group)
	for i, p := range places {
		g.Go(func() error {
			d, err := o.details.Fetch(ctx, p)
			if err == nil {
				details[i] = &d
			}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.PlaceDetail, 0, len(places))
	for _, d := range details {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out
}

func (o *Orchestrator) resolvePreferences(preferences []string) []string {
	if len(preferences) == 0 {
		preferences = o.cfg.DefaultPreferences
	}
	prefs := make([]string, 0, len(preferences))
	for _, p := range uniqueStrings(preferences) {
		t, ok := models.NormalizePlaceType(p)
		if !ok {
			o.logger.Warn().Str("preference", p).Msg("Skipping unknown preference")
			continue
		}
		prefs = append(prefs, t)
	}
	return uniqueStrings(prefs)
}

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
