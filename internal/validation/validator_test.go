// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package validation

import (
	"strings"
	"testing"
)

type tripRequest struct {
	Origin        string   `json:"origin" validate:"required,notblank"`
	Destination   string   `json:"destination" validate:"required,notblank"`
	Waypoints     []string `json:"waypoints" validate:"omitempty,max=3,dive,notblank"`
	DepartureTime string   `json:"departure_time" validate:"omitempty,departure_time"`
	StopDurations []int    `json:"stop_durations" validate:"omitempty,dive,gte=0,lte=72"`
	Preferences   []string `json:"attraction_preferences" validate:"omitempty,dive,place_type"`
	Radius        int      `json:"radius" validate:"omitempty,min=100,max=50000"`
}

func validTrip() tripRequest {
	return tripRequest{
		Origin:        "New Orleans, LA",
		Destination:   "Houston, TX",
		Waypoints:     []string{"Baton Rouge, LA"},
		DepartureTime: "now",
		StopDurations: []int{2},
		Preferences:   []string{"museum", "Hotel", "restaurants"},
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if v1, v2 := GetValidator(), GetValidator(); v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one non-nil instance")
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(r *tripRequest)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{name: "valid"},
		{name: "valid departure", mutate: func(r *tripRequest) { r.DepartureTime = "2026-07-04 09:30" }},
		{name: "now any case", mutate: func(r *tripRequest) { r.DepartureTime = "NOW" }},
		{
			name:      "missing origin",
			mutate:    func(r *tripRequest) { r.Origin = "" },
			wantField: "origin", wantTag: "required", wantMsg: "origin is required",
		},
		{
			name:      "blank destination",
			mutate:    func(r *tripRequest) { r.Destination = "   " },
			wantField: "destination", wantTag: "notblank", wantMsg: "destination must not be blank",
		},
		{
			name:      "bad departure",
			mutate:    func(r *tripRequest) { r.DepartureTime = "2026-07-04T09:30:00Z" },
			wantField: "departure_time", wantTag: "departure_time",
			wantMsg: `departure_time must be "now" or YYYY-MM-DD HH:MM`,
		},
		{
			name:      "unknown place type",
			mutate:    func(r *tripRequest) { r.Preferences = []string{"museum", "volcano_lair"} },
			wantField: "attraction_preferences[1]", wantTag: "place_type",
			wantMsg: "attraction_preferences[1] is not a supported place type",
		},
		{
			name:      "blank waypoint",
			mutate:    func(r *tripRequest) { r.Waypoints = []string{"A", ""} },
			wantField: "waypoints[1]", wantTag: "notblank",
		},
		{
			name:      "too many waypoints",
			mutate:    func(r *tripRequest) { r.Waypoints = []string{"A", "B", "C", "D"} },
			wantField: "waypoints", wantTag: "max", wantMsg: "waypoints must be at most 3 items",
		},
		{
			name:      "negative stop",
			mutate:    func(r *tripRequest) { r.StopDurations = []int{-1} },
			wantField: "stop_durations[0]", wantTag: "gte",
			wantMsg: "stop_durations[0] must be greater than or equal to 0",
		},
		{
			name:      "radius too small",
			mutate:    func(r *tripRequest) { r.Radius = 10 },
			wantField: "radius", wantTag: "min", wantMsg: "radius must be at least 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := validTrip()
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			verr := ValidateStruct(&req)
			if tt.wantTag == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("errors = %v, want one", verr)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("field/tag = %s/%s, want %s/%s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) {
		t.Parallel()
		req := validTrip()
		req.Origin = ""
		apiErr := ValidateStruct(&req).ToAPIError()
		if apiErr.Code != CodeValidationFailed || apiErr.Message != "origin is required" {
			t.Errorf("apiErr = %+v", apiErr)
		}
		if apiErr.Details["field"] != "origin" {
			t.Errorf("details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		t.Parallel()
		req := validTrip()
		req.Origin = ""
		req.Destination = ""
		apiErr := ValidateStruct(&req).ToAPIError()
		if apiErr.Code != CodeValidationFailed {
			t.Errorf("code = %s", apiErr.Code)
		}
		if !strings.Contains(apiErr.Message, "origin is required") || !strings.Contains(apiErr.Message, "destination is required") {
			t.Errorf("message = %q", apiErr.Message)
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 2 {
			t.Errorf("details = %v", apiErr.Details)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Code != CodeValidationFailed || apiErr.Message != "Validation failed" {
			t.Errorf("apiErr = %+v", apiErr)
		}
	})
}
