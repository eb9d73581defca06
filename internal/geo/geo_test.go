// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package geo

import (
	"math"
	"testing"

	"github.com/tomtom215/roadtrip/internal/models"
)

func TestHaversine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b models.Coordinate
		want float64
		tol  float64
	}{
		{"same point", models.Coordinate{Lat: 10, Lng: 10}, models.Coordinate{Lat: 10, Lng: 10}, 0, 0.001},
		{"one degree longitude at equator", models.Coordinate{}, models.Coordinate{Lng: 1}, 111320, 111320 * 0.01},
		{"one degree latitude", models.Coordinate{}, models.Coordinate{Lat: 1}, 111195, 50},
		{"new orleans to baton rouge", models.Coordinate{Lat: 29.9511, Lng: -90.0715}, models.Coordinate{Lat: 30.4515, Lng: -91.1871}, 120000, 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Haversine(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Haversine() = %f, want %f ± %f", got, tt.want, tt.tol)
			}
		})
	}
}

func TestHaversineSymmetric(t *testing.T) {
	t.Parallel()

	a := models.Coordinate{Lat: 40.7128, Lng: -74.006}
	b := models.Coordinate{Lat: 34.0522, Lng: -118.2437}
	if d1, d2 := Haversine(a, b), Haversine(b, a); math.Abs(d1-d2) > 1e-6 {
		t.Errorf("Haversine not symmetric: %f vs %f", d1, d2)
	}
}

func TestDecodePolyline(t *testing.T) {
	t.Parallel()

	got, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	if err != nil {
		t.Fatalf("DecodePolyline() error = %v", err)
	}
	want := []models.Coordinate{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i].Lat-want[i].Lat) > 1e-9 || math.Abs(got[i].Lng-want[i].Lng) > 1e-9 {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodePolylineEmpty(t *testing.T) {
	t.Parallel()

	got, err := DecodePolyline("")
	if err != nil {
		t.Fatalf("DecodePolyline() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestDecodePolylineTruncated(t *testing.T) {
	t.Parallel()

	// The second point has a latitude but no longitude.
	got, err := DecodePolyline("_p~iF~ps|U_ulL")
	if err != nil {
		t.Fatalf("DecodePolyline() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 complete point", len(got))
	}
	if math.Abs(got[0].Lat-38.5) > 1e-9 || math.Abs(got[0].Lng+120.2) > 1e-9 {
		t.Errorf("point = %+v", got[0])
	}
}

func TestSample(t *testing.T) {
	t.Parallel()

	points := make([]models.Coordinate, 100)
	for i := range points {
		points[i] = models.Coordinate{Lat: float64(i)}
	}

	got := Sample(points, 10)
	// skip 10, then indices 10,20,...,90
	if len(got) != 9 {
		t.Fatalf("len = %d, want 9", len(got))
	}
	if got[0].Lat != 10 || got[8].Lat != 90 {
		t.Errorf("sample bounds = %v..%v, want 10..90", got[0].Lat, got[8].Lat)
	}

	short := Sample(points[:5], 10)
	if len(short) != 1 || short[0].Lat != 0 {
		t.Errorf("short sample = %+v, want first point only", short)
	}

	if len(Sample(nil, 10)) != 0 {
		t.Error("Sample(nil) should be empty")
	}
}
