// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package recommend

import "errors"

var (
	// ErrNoResults is returned when a lookup succeeded but found nothing.
	ErrNoResults = errors.New("no results")

	// ErrNoRecommendations is returned when no requested location produced a bundle.
	ErrNoRecommendations = errors.New("no recommendations for any location")
)
