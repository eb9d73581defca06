// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/upstream"
)

// fakeGoogle implements GeocodeAPI, PlacesAPI and DetailsAPI from in-memory
// fixtures and records every call.
type fakeGoogle struct {
	mu sync.Mutex

	geocodes   map[string]models.Coordinate
	geocodeErr error

	nearby    func(req upstream.NearbyRequest) ([]upstream.PlaceResult, error)
	details   map[string]upstream.PlaceDetailsResult
	detailErr map[string]error

	geocodeCalls []string
	nearbyCalls  []upstream.NearbyRequest
	detailCalls  []string
	detailFields []string
}

func newFakeGoogle() *fakeGoogle {
	return &fakeGoogle{
		geocodes:  make(map[string]models.Coordinate),
		details:   make(map[string]upstream.PlaceDetailsResult),
		detailErr: make(map[string]error),
	}
}

func (f *fakeGoogle) Geocode(_ context.Context, address string) ([]upstream.GeocodeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.geocodeCalls = append(f.geocodeCalls, address)
	if f.geocodeErr != nil {
		return nil, f.geocodeErr
	}
	coord, ok := f.geocodes[address]
	if !ok {
		return nil, nil
	}
	return []upstream.GeocodeResult{{
		FormattedAddress: address,
		Geometry:         upstream.Geometry{Location: upstream.LatLng{Lat: coord.Lat, Lng: coord.Lng}},
	}}, nil
}

func (f *fakeGoogle) NearbySearch(_ context.Context, req upstream.NearbyRequest) ([]upstream.PlaceResult, error) {
	f.mu.Lock()
	f.nearbyCalls = append(f.nearbyCalls, req)
	nearby := f.nearby
	f.mu.Unlock()
	if nearby == nil {
		return nil, nil
	}
	return nearby(req)
}

func (f *fakeGoogle) PlaceDetails(_ context.Context, placeID string, fields []string) (*upstream.PlaceDetailsResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls = append(f.detailCalls, placeID)
	f.detailFields = fields
	if err := f.detailErr[placeID]; err != nil {
		return nil, err
	}
	d, ok := f.details[placeID]
	if !ok {
		return &upstream.PlaceDetailsResult{PlaceID: placeID}, nil
	}
	return &d, nil
}

func (f *fakeGoogle) nearbyTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, len(f.nearbyCalls))
	for i, c := range f.nearbyCalls {
		types[i] = c.Type
	}
	return types
}

func (f *fakeGoogle) callCounts() (geocode, nearby, details int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.geocodeCalls), len(f.nearbyCalls), len(f.detailCalls)
}

// fakeChat returns a canned reply and records the prompts it received.
type fakeChat struct {
	mu     sync.Mutex
	reply  string
	err    error
	system string
	user   string
	calls  int
}

func (f *fakeChat) Complete(_ context.Context, system, user string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.system = system
	f.user = user
	return f.reply, f.err
}

func ratingPtr(v float64) *float64 {
	return &v
}

// placeResults builds n results of one type named "<prefix> N" with IDs
// "<prefix>-N" and ratings descending from 5.0.
func placeResults(prefix string, n int, at models.Coordinate) []upstream.PlaceResult {
	out := make([]upstream.PlaceResult, n)
	for i := range out {
		out[i] = upstream.PlaceResult{
			Name:     fmt.Sprintf("%s %d", prefix, i+1),
			PlaceID:  fmt.Sprintf("%s-%d", prefix, i+1),
			Rating:   ratingPtr(5.0 - float64(i)*0.1),
			Geometry: upstream.Geometry{Location: upstream.LatLng{Lat: at.Lat, Lng: at.Lng}},
		}
	}
	return out
}

func newTestCache() *cache.Cache {
	return cache.New(cache.Config{})
}

func places(names ...string) []models.Place {
	out := make([]models.Place, len(names))
	for i, n := range names {
		out[i] = models.Place{Name: n, PlaceID: fmt.Sprintf("id-%d", i+1)}
	}
	return out
}
