// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"errors"
	"fmt"
	"strings"
)

// Category namespaces cache entries. Keys in different categories never collide.
type Category string

// Cache categories.
const (
	CategoryGeocode Category = "geocode"
	CategoryPlaces  Category = "places"
	CategoryDetails Category = "details"
	CategoryRoute   Category = "route"
	CategoryWeather Category = "weather"
)

// ErrUnknownCategory is returned by ParseCategory for names outside the enumeration.
var ErrUnknownCategory = errors.New("unknown cache category")

// AllCategories lists every category in a stable order.
var AllCategories = []Category{
	CategoryGeocode,
	CategoryPlaces,
	CategoryDetails,
	CategoryRoute,
	CategoryWeather,
}

// ParseCategory converts a user supplied name into a Category.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// prefix is the namespace used for this category in a persistent tier.
func (c Category) prefix() string {
	return string(c) + ":"
}
