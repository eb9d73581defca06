// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package cache provides the category-namespaced TTL cache shared by every
upstream lookup.

# Overview

The cache holds one typed store per category:

	Geocode  Store[models.Coordinate]    address -> coordinate
	Places   Store[[]models.Place]       nearby search results
	Details  Store[models.PlaceDetail]   "details_"+place_id -> detail
	Route    Store[models.RouteSummary]  directions summaries
	Weather  Store[models.WeatherReport] current conditions per stop

Every entry shares the configured TTL (one hour by default). An entry is
visible while now - storedAt < ttl and is deleted lazily the next time it is
read after expiring. There is no background sweep and no capacity bound.

# Persistent Tier

An optional Tier (BadgerTier or RedisTier) sits behind the in-memory stores.
Writes go to both. On an in-memory miss the tier is consulted and the record,
which carries its original store time, is promoted into memory. The backend is
also given the TTL so stale keys disappear from disk or Redis on their own.
Tier failures are logged and counted but never surface to callers.

# Usage Example

	c := cache.New(cache.Config{TTL: time.Hour}, cache.WithTier(tier))
	c.Geocode.Set("New Orleans, LA", coord)
	if coord, ok := c.Geocode.Get("New Orleans, LA"); ok {
	    // use coord
	}
	c.Clear(cache.CategoryPlaces)

# Thread Safety

Each store is guarded by its own sync.RWMutex. Two callers that miss on the
same key may both fetch upstream; the last Set wins.
*/
package cache
