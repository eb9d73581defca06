// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the upstream API reports that the requested
	// entity (place, address, route) does not exist. It does not count as a
	// circuit breaker failure.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when retries on HTTP 429 are exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrEmptyCompletion is returned when the LLM response has no content.
	ErrEmptyCompletion = errors.New("empty completion")
)

// APIStatusError is an application level failure reported in a 200 response
// body (Google "status" field) or in a structured error body. Its message
// omits Service and Operation; the requester adds them when wrapping.
type APIStatusError struct {
	Service   string
	Operation string
	Status    string
	Message   string
}

func (e *APIStatusError) Error() string {
	if e.Message == "" {
		return "status " + e.Status
	}
	return fmt.Sprintf("status %s: %s", e.Status, e.Message)
}

// HTTPStatusError is a non-2xx HTTP response that no service specific parser
// recognized.
type HTTPStatusError struct {
	Service    string
	Operation  string
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}
