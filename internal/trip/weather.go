// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package trip

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/roadtrip/internal/cache"
	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/models"
	"github.com/tomtom215/roadtrip/internal/upstream"
)

const weatherConcurrency = 4

// WeatherService reports current conditions at trip stops.
type WeatherService struct {
	api    WeatherAPI
	cache  *cache.Cache
	logger zerolog.Logger
}

// NewWeatherService creates a weather service.
func NewWeatherService(api WeatherAPI, c *cache.Cache) *WeatherService {
	return &WeatherService{
		api:    api,
		cache:  c,
		logger: logging.WithComponent("weather"),
	}
}

// ForStops returns a report per distinct, non-empty stop. A stop whose lookup
// failed gets a report with only Error set.
func (s *WeatherService) ForStops(ctx context.Context, stops []string) map[string]models.WeatherReport {
	out := make(map[string]models.WeatherReport, len(stops))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(weatherConcurrency)
	seen := make(map[string]struct{}, len(stops))
	for _, stop := range stops {
		stop = strings.TrimSpace(stop)
		if stop == "" {
			continue
		}
		if _, dup := seen[stop]; dup {
			continue
		}
		seen[stop] = struct{}{}

		g.Go(func() error {
			report := s.forStop(ctx, stop)
			mu.Lock()
			out[stop] = report
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *WeatherService) forStop(ctx context.Context, stop string) models.WeatherReport {
	if report, ok := s.cache.Weather.Get(stop); ok {
		return report
	}

	w, err := s.api.Current(ctx, stop)
	if err != nil {
		s.logger.Error().Err(err).Str("stop", stop).Msg("Weather lookup failed")
		return models.WeatherReport{Error: weatherErrorMessage(err)}
	}

	report := models.WeatherReport{
		Location:     w.Location.Name,
		Region:       w.Location.Region,
		Country:      w.Location.Country,
		Temperature:  models.FormatDecimal(w.Current.TempF) + "°F",
		TemperatureC: models.FormatDecimal(w.Current.TempC) + "°C",
		Condition:    w.Current.Condition.Text,
		Humidity:     strconv.Itoa(w.Current.Humidity) + "%",
		WindSpeedMph: models.FormatDecimal(w.Current.WindMph) + " mph",
		WindSpeedKph: models.FormatDecimal(w.Current.WindKph) + " kph",
		Coords:       &models.Coordinate{Lat: w.Location.Lat, Lng: w.Location.Lon},
	}
	s.cache.Weather.Set(stop, report)
	return report
}

// weatherErrorMessage prefers the provider's own message.
func weatherErrorMessage(err error) string {
	var apiErr *upstream.APIStatusError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
