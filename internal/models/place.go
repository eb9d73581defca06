// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package models

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// NotAvailable is the sentinel used when an upstream API omits an advisory field.
// It is emitted instead of omitting the key so clients can rely on key presence.
const NotAvailable = "N/A"

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String formats the coordinate as "lat,lng", the form accepted by the
// Google location parameters.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Rating is a place rating that may be unknown.
//
// Unknown ratings serialize as "N/A" and sort below every known rating.
// They are never coerced to a numeric default.
type Rating struct {
	Value float64
	Known bool
}

// RatingOf returns a known rating.
func RatingOf(v float64) Rating {
	return Rating{Value: v, Known: true}
}

// RatingFromPtr converts an optional upstream rating.
func RatingFromPtr(v *float64) Rating {
	if v == nil {
		return Rating{}
	}
	return RatingOf(*v)
}

// Less reports whether r ranks strictly below other.
func (r Rating) Less(other Rating) bool {
	switch {
	case !r.Known && !other.Known:
		return false
	case !r.Known:
		return true
	case !other.Known:
		return false
	default:
		return r.Value < other.Value
	}
}

// String renders the rating for prompts and logs. Whole numbers keep one
// decimal place ("4.0") so prompts read the same as the upstream values.
func (r Rating) String() string {
	if !r.Known {
		return NotAvailable
	}
	return FormatDecimal(r.Value)
}

// FormatDecimal formats v with the shortest exact representation, keeping one
// decimal place for whole numbers ("72.0").
func FormatDecimal(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (r Rating) MarshalJSON() ([]byte, error) {
	if !r.Known {
		return []byte(`"` + NotAvailable + `"`), nil
	}
	return []byte(strconv.FormatFloat(r.Value, 'f', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || data[0] == '"' {
		var s string
		if data[0] == '"' {
			if err := json.Unmarshal(data, &s); err != nil {
				return err
			}
		}
		if s == "" || s == NotAvailable {
			*r = Rating{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid rating %q: %w", s, err)
		}
		*r = RatingOf(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid rating %s: %w", data, err)
	}
	*r = RatingOf(v)
	return nil
}

// WeeklyHours holds the weekday opening-hours text of a place.
// A nil value serializes as "N/A".
type WeeklyHours []string

// MarshalJSON implements json.Marshaler.
func (h WeeklyHours) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte(`"` + NotAvailable + `"`), nil
	}
	return json.Marshal([]string(h))
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *WeeklyHours) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*h = nil
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	*h = lines
	return nil
}

// Place is a candidate returned by a nearby search, before detail enrichment.
// PlaceID is the identity used for every deduplication in the system.
type Place struct {
	Name     string     `json:"name"`
	PlaceID  string     `json:"place_id"`
	Coords   Coordinate `json:"coords"`
	Rating   Rating     `json:"rating"`
	Types    []string   `json:"types,omitempty"`
	Vicinity string     `json:"vicinity,omitempty"`
}

// PlaceDetail is a place enriched by the details API.
type PlaceDetail struct {
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	PhoneNumber  string      `json:"phone_number"`
	Rating       Rating      `json:"rating"`
	OpeningHours WeeklyHours `json:"opening_hours"`
	Coords       *Coordinate `json:"coords,omitempty"`
	PlaceID      string      `json:"place_id"`
}

// RouteAttraction is a place found near a sampled point of a driving route.
type RouteAttraction struct {
	Name                    string     `json:"name"`
	Type                    string     `json:"type"`
	Location                Coordinate `json:"location"`
	Rating                  Rating     `json:"rating"`
	DistanceFromRouteMeters float64    `json:"distance_from_route_meters"`
	PlaceID                 string     `json:"place_id"`
}

// Bundle is the recommendation set for one location.
type Bundle struct {
	Restaurants []PlaceDetail `json:"restaurants"`
	Hotels      []PlaceDetail `json:"hotels"`
	Attractions []PlaceDetail `json:"attractions"`
}
