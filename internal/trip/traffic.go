// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package trip

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/upstream"
)

// TrafficRequest describes a trip to schedule.
type TrafficRequest struct {
	Origin      string
	Destination string
	Waypoints   []string

	// Departure is the start time at the origin. Zero means now.
	Departure time.Time

	// StopDurationsHours is the time spent at each waypoint, in order.
	StopDurationsHours []int
}

// TrafficService estimates arrival times along a trip.
type TrafficService struct {
	api      MatrixAPI
	geocoder Resolver
	now      func() time.Time
	logger   zerolog.Logger
}

// NewTrafficService creates a traffic service. geocoder may be nil, in which
// case stops carry no coordinates.
func NewTrafficService(api MatrixAPI, geocoder Resolver) *TrafficService {
	return &TrafficService{
		api:      api,
		geocoder: geocoder,
		now:      time.Now,
		logger:   logging.WithComponent("traffic"),
	}
}

// Estimate schedules every leg of the trip in order. Each leg departs when
// the previous one arrived plus the stop duration at that waypoint. Travel
// times prefer duration_in_traffic; a leg without a usable element counts
// as zero.
func (s *TrafficService) Estimate(ctx context.Context, req TrafficRequest) (*models.TrafficReport, error) {
	now := s.now()
	departure := req.Departure
	if departure.IsZero() {
		departure = now
	}

	stops := make([]string, 0, len(req.Waypoints)+2)
	stops = append(stops, req.Origin)
	stops = append(stops, req.Waypoints...)
	stops = append(stops, req.Destination)

	report := &models.TrafficReport{EstimatedStops: make([]models.TrafficStop, 0, len(stops)-1)}
	var totalSeconds int64

	for i := 0; i < len(stops)-1; i++ {
		from, to := stops[i], stops[i+1]

		seconds, err := s.legSeconds(ctx, from, to, departure, now)
		if err != nil {
			return nil, err
		}
		totalSeconds += seconds

		arrival := departure.Add(time.Duration(seconds) * time.Second)
		stopMinutes := 0
		if i < len(req.StopDurationsHours) {
			stopMinutes = req.StopDurationsHours[i] * 60
		}
		departure = arrival.Add(time.Duration(stopMinutes) * time.Minute)

		report.EstimatedStops = append(report.EstimatedStops, models.TrafficStop{
			Stop:              to,
			ArrivalDateTime:   arrival.Format(ScheduleLayout),
			DepartureDateTime: departure.Format(ScheduleLayout),
			TravelTime:        hoursMinutes(seconds),
			StopDuration:      stopDurationText(stopMinutes),
			Coords:            s.coords(ctx, to),
		})
	}

	report.TotalDurationText = hoursMinutes(totalSeconds)
	report.Condition = TrafficCondition(totalSeconds)
	return report, nil
}

func (s *TrafficService) legSeconds(ctx context.Context, from, to string, departure, now time.Time) (int64, error) {
	// Google rejects departure times in the past.
	var unix int64
	if departure.After(now) {
		unix = departure.Unix()
	}

	matrix, err := s.api.DistanceMatrix(ctx, upstream.MatrixRequest{
		Origins:       []string{from},
		Destinations:  []string{to},
		DepartureUnix: unix,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("from", from).Str("to", to).Msg("Distance matrix request failed")
		return 0, fmt.Errorf("traffic %s to %s: %w", from, to, err)
	}

	el := matrix.Element(0, 0)
	switch {
	case el == nil || (el.Status != "" && el.Status != upstream.StatusOK):
		s.logger.Warn().Str("from", from).Str("to", to).Msg("No travel time for leg")
		return 0, nil
	case el.DurationInTraffic != nil:
		return el.DurationInTraffic.Value, nil
	case el.Duration != nil:
		return el.Duration.Value, nil
	default:
		return 0, nil
	}
}

func (s *TrafficService) coords(ctx context.Context, stop string) *models.Coordinate {
	if s.geocoder == nil {
		return nil
	}
	c, err := s.geocoder.Resolve(ctx, stop)
	if err != nil {
		return nil
	}
	return &c
}
