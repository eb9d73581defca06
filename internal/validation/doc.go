// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

// Package validation validates API request bodies with go-playground/validator v10.
//
// A single validator instance is shared by all handlers; it caches struct
// metadata, so it is built once. Error field names are taken from the json
// tags, so messages refer to the names clients actually send.
//
// # Custom tags
//
//   - place_type: a Google place type or alias such as "hotel" (case-insensitive)
//   - departure_time: "now" or "YYYY-MM-DD HH:MM"
//   - notblank: a string with at least one non-space character
//
// # Usage
//
//	type RecommendationRequest struct {
//	    Locations   []string `json:"locations" validate:"required,min=1,max=25,dive,notblank"`
//	    Preferences []string `json:"preferences" validate:"omitempty,dive,place_type"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code (VALIDATION_FAILED)
//	}
package validation
