// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package trip

import (
	"context"
	"errors"
	"sync"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/recommend"
	"github.com/tomtom215/roadtrip/internal/upstream"
)

func newTestCache() *cache.Cache {
	return cache.New(cache.Config{})
}

type fakeDirections struct {
	mu     sync.Mutex
	routes []upstream.Route
	err    error
	calls  []upstream.DirectionsRequest
}

func (f *fakeDirections) Directions(_ context.Context, req upstream.DirectionsRequest) ([]upstream.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.routes, f.err
}

// fakeMatrix answers single-cell matrix requests from a from|to table.
type fakeMatrix struct {
	mu       sync.Mutex
	elements map[string]upstream.MatrixElement
	err      error
	calls    []upstream.MatrixRequest
}

func (f *fakeMatrix) DistanceMatrix(_ context.Context, req upstream.MatrixRequest) (*upstream.DistanceMatrix, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	el, ok := f.elements[req.Origins[0]+"|"+req.Destinations[0]]
	if !ok {
		return &upstream.DistanceMatrix{}, nil
	}
	return &upstream.DistanceMatrix{Rows: []upstream.MatrixRow{{Elements: []upstream.MatrixElement{el}}}}, nil
}

func seconds(v int64) *upstream.TextValue {
	return &upstream.TextValue{Value: v}
}

type fakeResolver map[string]models.Coordinate

func (f fakeResolver) Resolve(_ context.Context, address string) (models.Coordinate, error) {
	c, ok := f[address]
	if !ok {
		return models.Coordinate{}, recommend.ErrNoResults
	}
	return c, nil
}

type fakeWeather struct {
	mu      sync.Mutex
	reports map[string]*upstream.CurrentWeather
	errs    map[string]error
	calls   []string
}

func (f *fakeWeather) Current(_ context.Context, query string) (*upstream.CurrentWeather, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, query)
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	if w, ok := f.reports[query]; ok {
		return w, nil
	}
	return nil, errors.New("no weather fixture")
}

func currentWeather(name string, tempF float64) *upstream.CurrentWeather {
	w := &upstream.CurrentWeather{}
	w.Location.Name = name
	w.Location.Region = "Louisiana"
	w.Location.Country = "USA"
	w.Location.Lat = 29.95
	w.Location.Lon = -90.07
	w.Current.TempF = tempF
	w.Current.TempC = 22.2
	w.Current.Humidity = 84
	w.Current.WindMph = 6.9
	w.Current.WindKph = 11
	w.Current.Condition.Text = "Partly cloudy"
	return w
}
