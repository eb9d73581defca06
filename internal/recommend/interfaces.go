// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import (
	"context"

	"github.com/tomtom215/roadtrip/internal/upstream"
)

// GeocodeAPI resolves addresses. Implemented by upstream.GoogleClient.
type GeocodeAPI interface {
	Geocode(ctx context.Context, address string) ([]upstream.GeocodeResult, error)
}

// PlacesAPI runs Nearby Searches. Implemented by upstream.GoogleClient.
type PlacesAPI interface {
	NearbySearch(ctx context.Context, req upstream.NearbyRequest) ([]upstream.PlaceResult, error)
}

// DetailsAPI loads Place Details. Implemented by upstream.GoogleClient.
type DetailsAPI interface {
	PlaceDetails(ctx context.Context, placeID string, fields []string) (*upstream.PlaceDetailsResult, error)
}

// ChatCompleter sends a single-turn chat completion. Implemented by
// upstream.ChatClient.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

var (
	_ GeocodeAPI    = (*upstream.GoogleClient)(nil)
	_ PlacesAPI     = (*upstream.GoogleClient)(nil)
	_ DetailsAPI    = (*upstream.GoogleClient)(nil)
	_ ChatCompleter = (*upstream.ChatClient)(nil)
)
