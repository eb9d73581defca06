// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

// Package recommend produces place recommendations for trip locations and
// finds attractions along a route.
//
// # Pipeline
//
// For each requested location the Orchestrator:
//
//  1. resolves the address with the Geocoder
//  2. fetches restaurants and hotels with the PlaceFetcher, AI-ranks them with
//     the Ranker and loads details with the DetailFetcher
//  3. fetches a few places per attraction preference, merges them and loads
//     their details
//
// Locations are processed concurrently. A location whose geocode fails is
// omitted; a failed category degrades to an empty list.
//
// # Ranking
//
// The Ranker asks an LLM to order candidates and maps the numbered lines of the
// reply back onto candidates by fuzzy name match (SequenceMatcher ratio, cutoff
// 0.7). When nothing matches, or the LLM fails, the first candidates in
// upstream order are used. Ranking never returns an error.
//
// # Route scanning
//
// The Scanner samples a decoded route polyline, searches each sample point
// for the requested categories and keeps the best-rated places within a
// distance limit. Sample points are fetched in parallel waves but accumulated
// in route order, so results are deterministic.
//
// # Caching
//
// Geocodes, nearby searches and place details are cached in the injected
// cache.Cache for the configured TTL.
//
// # Usage
//
//	c := cache.New(cache.Config{TTL: time.Hour})
//	orch := recommend.NewOrchestrator(recommend.DefaultConfig(), recommend.Dependencies{
//	    Geocode: google, Places: google, Details: google, Chat: chat, Cache: c,
//	})
//	bundles, err := orch.Recommend(ctx, []string{"New Orleans, LA"}, nil)
package recommend
