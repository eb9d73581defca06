// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package models

import "strings"

// Place types used by the recommendation pipeline.
const (
	PlaceTypeRestaurant = "restaurant"
	PlaceTypeLodging    = "lodging"
)

// placeTypes is the set of Google place types accepted as categories.
var placeTypes = map[string]struct{}{
	"amusement_park":                    {},
	"aquarium":                          {},
	"art_gallery":                       {},
	"bakery":                            {},
	"bar":                               {},
	"beach":                             {},
	"cafe":                              {},
	"campground":                        {},
	"casino":                            {},
	"cultural_landmark":                 {},
	"electric_vehicle_charging_station": {},
	"gas_station":                       {},
	"historical_landmark":               {},
	"library":                           {},
	PlaceTypeLodging:                    {},
	"movie_theater":                     {},
	"museum":                            {},
	"night_club":                        {},
	"park":                              {},
	PlaceTypeRestaurant:                 {},
	"rest_stop":                         {},
	"shopping_mall":                     {},
	"spa":                               {},
	"stadium":                           {},
	"theme_park":                        {},
	"tourist_attraction":                {},
	"zoo":                               {},
}

var placeTypeAliases = map[string]string{
	"hotel":       PlaceTypeLodging,
	"hotels":      PlaceTypeLodging,
	"restaurants": PlaceTypeRestaurant,
}

// NormalizePlaceType maps a user supplied category to a Google place type.
// The second return value is false for unknown categories.
func NormalizePlaceType(category string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(category))
	if alias, ok := placeTypeAliases[c]; ok {
		c = alias
	}
	if _, ok := placeTypes[c]; !ok {
		return "", false
	}
	return c, true
}

// IsPlaceType reports whether category is a known (or aliased) place type.
func IsPlaceType(category string) bool {
	_, ok := NormalizePlaceType(category)
	return ok
}
