// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package upstream

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"googlemaps.github.io/maps"
)

// GoogleConfig configures the Google Maps client.
type GoogleConfig struct {
	APIKey string

	// BaseURL replaces https://maps.googleapis.com. The /maps/api/... paths
	// are appended to it.
	BaseURL string

	Options ClientOptions
}

// GoogleClient calls the Google Maps Geocoding, Places, Directions and
// Distance Matrix web services through googlemaps.github.io/maps.
//
// OK and ZERO_RESULTS are successes, NOT_FOUND maps to ErrNotFound and any
// other status is returned as *APIStatusError.
//
// Thread Safety: Safe for concurrent use.
type GoogleClient struct {
	maps *maps.Client
	req  *requester
}

// NewGoogleClient creates a Google Maps client. Throttling and 429 backoff
// are done by the requester transport, so the maps package's own limiter is
// turned off.
func NewGoogleClient(cfg GoogleConfig) (*GoogleClient, error) {
	req := newRequester("google", cfg.Options, nil)

	opts := []maps.ClientOption{
		maps.WithAPIKey(cfg.APIKey),
		maps.WithHTTPClient(req.httpClient()),
		maps.WithRateLimit(0),
	}
	if base := strings.TrimRight(cfg.BaseURL, "/"); base != "" {
		opts = append(opts, maps.WithBaseURL(base))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("google maps client: %w", err)
	}
	return &GoogleClient{maps: client, req: req}, nil
}

// BreakerState reports the circuit breaker state for readiness checks.
func (c *GoogleClient) BreakerState() string {
	return c.req.breaker.State()
}

// Geocode resolves an address to candidate locations.
func (c *GoogleClient) Geocode(ctx context.Context, address string) ([]GeocodeResult, error) {
	var results []maps.GeocodingResult
	err := c.call(ctx, "geocode", func(ctx context.Context) (err error) {
		results, err = c.maps.Geocode(ctx, &maps.GeocodingRequest{Address: address})
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]GeocodeResult, 0, len(results))
	for _, r := range results {
		out = append(out, GeocodeResult{
			FormattedAddress: r.FormattedAddress,
			PlaceID:          r.PlaceID,
			Geometry:         Geometry{Location: fromMapsLatLng(r.Geometry.Location)},
		})
	}
	return out, nil
}

// NearbySearch returns places of one type around a location.
func (c *GoogleClient) NearbySearch(ctx context.Context, r NearbyRequest) ([]PlaceResult, error) {
	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: r.Location.Lat, Lng: r.Location.Lng},
		Radius:   uint(max(r.Radius, 0)),
		Keyword:  r.Keyword,
		Type:     maps.PlaceType(r.Type),
	}

	var resp maps.PlacesSearchResponse
	err := c.call(ctx, "nearbysearch", func(ctx context.Context) (err error) {
		resp, err = c.maps.NearbySearch(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]PlaceResult, 0, len(resp.Results))
	for _, p := range resp.Results {
		out = append(out, PlaceResult{
			Name:             p.Name,
			PlaceID:          p.PlaceID,
			Rating:           rating(p.Rating),
			UserRatingsTotal: p.UserRatingsTotal,
			Types:            p.Types,
			Vicinity:         p.Vicinity,
			Geometry:         Geometry{Location: fromMapsLatLng(p.Geometry.Location)},
		})
	}
	return out, nil
}

// PlaceDetails fetches the given fields for one place.
func (c *GoogleClient) PlaceDetails(ctx context.Context, placeID string, fields []string) (*PlaceDetailsResult, error) {
	req := &maps.PlaceDetailsRequest{PlaceID: placeID}
	for _, f := range fields {
		req.Fields = append(req.Fields, maps.PlaceDetailsFieldMask(f))
	}

	var d maps.PlaceDetailsResult
	err := c.call(ctx, "details", func(ctx context.Context) (err error) {
		d, err = c.maps.PlaceDetails(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &PlaceDetailsResult{
		Name:                 d.Name,
		PlaceID:              d.PlaceID,
		FormattedAddress:     d.FormattedAddress,
		FormattedPhoneNumber: d.FormattedPhoneNumber,
		Rating:               rating(d.Rating),
	}
	if d.OpeningHours != nil {
		out.OpeningHours = &OpeningHours{
			OpenNow:     d.OpeningHours.OpenNow,
			WeekdayText: d.OpeningHours.WeekdayText,
		}
	}
	if loc := d.Geometry.Location; loc != (maps.LatLng{}) {
		out.Geometry = &Geometry{Location: fromMapsLatLng(loc)}
	}
	return out, nil
}

// Directions returns driving routes between origin and destination via the
// optional waypoints.
func (c *GoogleClient) Directions(ctx context.Context, r DirectionsRequest) ([]Route, error) {
	req := &maps.DirectionsRequest{
		Origin:        r.Origin,
		Destination:   r.Destination,
		Waypoints:     r.Waypoints,
		Mode:          maps.TravelModeDriving,
		DepartureTime: departureParam(r.DepartureUnix),
	}

	var routes []maps.Route
	err := c.call(ctx, "directions", func(ctx context.Context) (err error) {
		routes, _, err = c.maps.Directions(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]Route, 0, len(routes))
	for _, route := range routes {
		legs := make([]Leg, 0, len(route.Legs))
		for _, leg := range route.Legs {
			if leg == nil {
				continue
			}
			legs = append(legs, Leg{
				StartAddress:      leg.StartAddress,
				EndAddress:        leg.EndAddress,
				StartLocation:     fromMapsLatLng(leg.StartLocation),
				EndLocation:       fromMapsLatLng(leg.EndLocation),
				Distance:          distanceValue(leg.Distance),
				Duration:          durationValue(leg.Duration),
				DurationInTraffic: optionalDuration(leg.DurationInTraffic),
			})
		}
		out = append(out, Route{
			Summary:          route.Summary,
			Legs:             legs,
			OverviewPolyline: Polyline{Points: route.OverviewPolyline.Points},
			Warnings:         route.Warnings,
		})
	}
	return out, nil
}

// DistanceMatrix returns driving durations between origins and destinations.
func (c *GoogleClient) DistanceMatrix(ctx context.Context, r MatrixRequest) (*DistanceMatrix, error) {
	req := &maps.DistanceMatrixRequest{
		Origins:       r.Origins,
		Destinations:  r.Destinations,
		Mode:          maps.TravelModeDriving,
		DepartureTime: departureParam(r.DepartureUnix),
	}

	var resp *maps.DistanceMatrixResponse
	err := c.call(ctx, "distancematrix", func(ctx context.Context) (err error) {
		resp, err = c.maps.DistanceMatrix(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := &DistanceMatrix{
		OriginAddresses:      resp.OriginAddresses,
		DestinationAddresses: resp.DestinationAddresses,
		Rows:                 make([]MatrixRow, 0, len(resp.Rows)),
	}
	for _, row := range resp.Rows {
		elements := make([]MatrixElement, 0, len(row.Elements))
		for _, el := range row.Elements {
			if el == nil {
				elements = append(elements, MatrixElement{})
				continue
			}
			m := MatrixElement{
				Status:            el.Status,
				Duration:          optionalDuration(el.Duration),
				DurationInTraffic: optionalDuration(el.DurationInTraffic),
			}
			if el.Distance != (maps.Distance{}) {
				d := distanceValue(el.Distance)
				m.Distance = &d
			}
			elements = append(elements, m)
		}
		out.Rows = append(out.Rows, MatrixRow{Elements: elements})
	}
	return out, nil
}

func departureParam(unix int64) string {
	if unix <= 0 {
		return "now"
	}
	return strconv.FormatInt(unix, 10)
}

// call runs one maps request under the requester. Status errors are mapped
// inside the breaker so NOT_FOUND does not count as a failure.
func (c *GoogleClient) call(ctx context.Context, operation string, fn func(context.Context) error) error {
	return c.req.call(ctx, operation, func(ctx context.Context) error {
		return statusError(operation, fn(ctx))
	})
}

// statusError converts the maps package's "maps: STATUS - message" errors.
// Other errors pass through unchanged.
func statusError(operation string, err error) error {
	if err == nil {
		return nil
	}
	status, message, ok := parseStatus(err.Error())
	if !ok {
		return err
	}
	if status == statusNotFound {
		return ErrNotFound
	}
	return &APIStatusError{
		Service:   "google",
		Operation: operation,
		Status:    status,
		Message:   message,
	}
}

func parseStatus(msg string) (status, message string, ok bool) {
	rest, found := strings.CutPrefix(msg, "maps: ")
	if !found {
		return "", "", false
	}
	status, message, _ = strings.Cut(rest, " - ")
	if status == "" || strings.TrimLeft(status, "ABCDEFGHIJKLMNOPQRSTUVWXYZ_") != "" {
		return "", "", false
	}
	return status, message, true
}
