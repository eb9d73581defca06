// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package upstream

import (
	"fmt"
	"math"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/tomtom215/roadtrip/internal/models"
)

// Google Maps web service status values.
const (
	StatusOK       = "OK"
	statusNotFound = "NOT_FOUND"
)

// LatLng is a Google location literal.
type LatLng struct {
	Lat float64
	Lng float64
}

// Coordinate converts to the domain type.
func (l LatLng) Coordinate() models.Coordinate {
	return models.Coordinate{Lat: l.Lat, Lng: l.Lng}
}

func fromMapsLatLng(l maps.LatLng) LatLng {
	return LatLng{Lat: l.Lat, Lng: l.Lng}
}

// Geometry holds a result's location.
type Geometry struct {
	Location LatLng
}

// TextValue is a Google distance or duration: human text plus meters/seconds.
type TextValue struct {
	Text  string
	Value int64
}

func distanceValue(d maps.Distance) TextValue {
	return TextValue{Text: d.HumanReadable, Value: int64(d.Meters)}
}

func durationValue(d time.Duration) TextValue {
	return TextValue{Text: durationText(d), Value: int64(d / time.Second)}
}

// optionalDuration treats zero as absent, which is how the maps package
// reports a missing duration_in_traffic.
func optionalDuration(d time.Duration) *TextValue {
	if d <= 0 {
		return nil
	}
	v := durationValue(d)
	return &v
}

// durationText renders d the way Google's "text" fields do, for example
// "1 hour 20 mins" or "2 days 3 hours".
func durationText(d time.Duration) string {
	mins := int64(math.Round(d.Minutes()))
	if mins < 1 && d > 0 {
		mins = 1
	}
	days, hours, rest := mins/(24*60), mins%(24*60)/60, mins%60

	var parts []string
	switch {
	case days > 0:
		parts = append(parts, plural(days, "day"))
		if hours > 0 {
			parts = append(parts, plural(hours, "hour"))
		}
	case hours > 0:
		parts = append(parts, plural(hours, "hour"))
		if rest > 0 {
			parts = append(parts, plural(rest, "min"))
		}
	default:
		parts = append(parts, plural(rest, "min"))
	}
	return strings.Join(parts, " ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// rating converts a Places rating. The maps package decodes a missing rating
// as zero and Google never reports zero, so zero means "no rating". Ratings
// carry one decimal; rounding drops float32 noise.
func rating(r float32) *float64 {
	if r == 0 {
		return nil
	}
	v := math.Round(float64(r)*100) / 100
	return &v
}

// GeocodeResult is one geocoding candidate.
type GeocodeResult struct {
	FormattedAddress string
	PlaceID          string
	Geometry         Geometry
}

// NearbyRequest parameterizes a Nearby Search.
type NearbyRequest struct {
	Location models.Coordinate
	Radius   int
	Type     string
	Keyword  string
}

// PlaceResult is one Nearby Search result.
type PlaceResult struct {
	Name             string
	PlaceID          string
	Rating           *float64
	UserRatingsTotal int
	Types            []string
	Vicinity         string
	Geometry         Geometry
}

// OpeningHours is the opening_hours block of a details result.
type OpeningHours struct {
	OpenNow     *bool
	WeekdayText []string
}

// PlaceDetailsResult is a Place Details result restricted to requested fields.
type PlaceDetailsResult struct {
	Name                 string
	PlaceID              string
	FormattedAddress     string
	FormattedPhoneNumber string
	Rating               *float64
	OpeningHours         *OpeningHours
	Geometry             *Geometry
}

// DirectionsRequest parameterizes a driving Directions call.
type DirectionsRequest struct {
	Origin      string
	Destination string
	Waypoints   []string
	// DepartureTime of zero means "now".
	DepartureUnix int64
}

// Leg is one leg of a route.
type Leg struct {
	StartAddress      string
	EndAddress        string
	StartLocation     LatLng
	EndLocation       LatLng
	Distance          TextValue
	Duration          TextValue
	DurationInTraffic *TextValue
}

// Polyline is an encoded polyline.
type Polyline struct {
	Points string
}

// Route is one Directions route.
type Route struct {
	Summary          string
	Legs             []Leg
	OverviewPolyline Polyline
	Warnings         []string
}

// MatrixRequest parameterizes a Distance Matrix call.
type MatrixRequest struct {
	Origins       []string
	Destinations  []string
	DepartureUnix int64
}

// MatrixElement is one origin/destination cell.
type MatrixElement struct {
	Status            string
	Distance          *TextValue
	Duration          *TextValue
	DurationInTraffic *TextValue
}

// MatrixRow holds the elements for one origin.
type MatrixRow struct {
	Elements []MatrixElement
}

// DistanceMatrix is a Distance Matrix response.
type DistanceMatrix struct {
	OriginAddresses      []string
	DestinationAddresses []string
	Rows                 []MatrixRow
}

// Element returns the cell for origin i and destination j, or nil.
func (m *DistanceMatrix) Element(i, j int) *MatrixElement {
	if m == nil || i < 0 || i >= len(m.Rows) || j < 0 || j >= len(m.Rows[i].Elements) {
		return nil
	}
	return &m.Rows[i].Elements[j]
}
