// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package trip

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomtom215/roadtrip/internal/validation"
)

const metersToMiles = 0.000621371

// Time layouts.
const (
	// DepartureLayout is the accepted departure_time format besides "now".
	DepartureLayout = validation.DepartureLayout

	// ScheduleLayout formats arrival and departure times in traffic reports.
	ScheduleLayout = "2006-01-02 03:04 PM"
)

// Traffic conditions by total driving time.
const (
	ConditionLight    = "Light"
	ConditionModerate = "Moderate"
	ConditionHeavy    = "Heavy"
	ConditionSevere   = "Severe"
)

// TrafficCondition classifies a total driving time in seconds.
func TrafficCondition(totalSeconds int64) string {
	switch {
	case totalSeconds < 1800:
		return ConditionLight
	case totalSeconds < 3600:
		return ConditionModerate
	case totalSeconds < 7200:
		return ConditionHeavy
	default:
		return ConditionSevere
	}
}

// ParseDeparture accepts "now" (or an empty string) and DepartureLayout,
// interpreted in loc.
func ParseDeparture(value string, now time.Time, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "now") {
		return now, nil
	}
	t, err := time.ParseInLocation(DepartureLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("departure time %q: expected \"now\" or YYYY-MM-DD HH:MM", value)
	}
	return t, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// hoursMinutes renders seconds as "H hours M minutes".
func hoursMinutes(seconds int64) string {
	return fmt.Sprintf("%d hours %d minutes", seconds/3600, (seconds%3600)/60)
}

// stopDurationText renders a stop length, or "Final destination" for zero.
func stopDurationText(minutes int) string {
	switch {
	case minutes <= 0:
		return "Final destination"
	case minutes%60 == 0:
		return fmt.Sprintf("%d hours", minutes/60)
	default:
		return fmt.Sprintf("%d hours %d minutes", minutes/60, minutes%60)
	}
}
