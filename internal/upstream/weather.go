// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// DefaultWeatherBaseURL is the WeatherAPI.com v1 root.
const DefaultWeatherBaseURL = "http://api.weatherapi.com/v1"

// weatherNoLocation is WeatherAPI's "No matching location found" error code.
const weatherNoLocation = 1006

// WeatherConfig configures the WeatherAPI client.
type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Options ClientOptions
}

// CurrentWeather is the subset of a current.json response the planner uses.
type CurrentWeather struct {
	Location struct {
		Name    string  `json:"name"`
		Region  string  `json:"region"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	} `json:"location"`
	Current struct {
		TempF     float64 `json:"temp_f"`
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		WindMph   float64 `json:"wind_mph"`
		WindKph   float64 `json:"wind_kph"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// WeatherClient calls WeatherAPI.com.
type WeatherClient struct {
	baseURL string
	apiKey  string
	req     *requester
}

// NewWeatherClient creates a WeatherAPI client.
func NewWeatherClient(cfg WeatherConfig) *WeatherClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultWeatherBaseURL
	}
	return &WeatherClient{
		baseURL: base,
		apiKey:  cfg.APIKey,
		req:     newRequester("weather", cfg.Options, parseWeatherError),
	}
}

// BreakerState reports the circuit breaker state for readiness checks.
func (c *WeatherClient) BreakerState() string {
	return c.req.breaker.State()
}

// Current returns current conditions for a free-form location query.
func (c *WeatherClient) Current(ctx context.Context, query string) (*CurrentWeather, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("aqi", "no")
	reqURL := c.baseURL + "/current.json?" + params.Encode()

	var result CurrentWeather
	err := c.req.do(ctx, "current",
		func(ctx context.Context) (*http.Request, error) {
			return http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		},
		func(body []byte) error {
			// WeatherAPI can report errors with a 200 as well.
			if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
				return weatherError("current", gjson.GetBytes(body, "error.code").Int(), msg.String())
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to decode current response: %w", err)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// parseWeatherError reads {"error":{"code":..,"message":..}} bodies.
func parseWeatherError(operation string, _ int, body []byte) error {
	msg := gjson.GetBytes(body, "error.message")
	if !msg.Exists() {
		return nil
	}
	return weatherError(operation, gjson.GetBytes(body, "error.code").Int(), msg.String())
}

func weatherError(operation string, code int64, message string) error {
	apiErr := &APIStatusError{
		Service:   "weather",
		Operation: operation,
		Status:    strconv.FormatInt(code, 10),
		Message:   message,
	}
	if code == weatherNoLocation {
		return fmt.Errorf("%w: %w", ErrNotFound, apiErr)
	}
	return apiErr
}
