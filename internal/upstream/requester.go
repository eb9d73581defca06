// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/roadtrip/internal/logging"
	"github.com/tomtom215/roadtrip/internal/metrics"
)

// maxErrorBodySize limits the maximum amount of response body read for error reporting
// This prevents unbounded memory allocation when reading large error responses
const maxErrorBodySize = 64 * 1024 // 64KB

// maxResponseBodySize bounds successful response bodies.
const maxResponseBodySize = 16 << 20 // 16MB

// ClientOptions configures the transport behavior shared by every upstream client.
type ClientOptions struct {
	// Timeout bounds one HTTP exchange. For the SDK-backed clients it also
	// covers 429 backoff. Default 30s.
	Timeout time.Duration

	// RequestsPerSecond throttles outgoing calls. Zero disables throttling.
	RequestsPerSecond float64

	// Burst is the limiter burst size. Default 1 when throttling is enabled.
	Burst int

	// MaxRetries bounds retries on HTTP 429. Default 3.
	MaxRetries int

	// RetryBaseDelay is the first backoff delay; it doubles on every retry. Default 1s.
	RetryBaseDelay time.Duration

	// Breaker tunes the per-service circuit breaker.
	Breaker BreakerSettings

	// HTTPClient replaces the default client (tests). SDK-backed clients
	// reuse its Transport underneath the requester transport.
	HTTPClient *http.Client
}

// DefaultClientOptions returns the production transport settings.
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:        30 * time.Second,
		MaxRetries:     3,
		RetryBaseDelay: time.Second,
		Breaker:        DefaultBreakerSettings(),
	}
}

func (o ClientOptions) withDefaults() ClientOptions {
	d := DefaultClientOptions()
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBaseDelay <= 0 {
		o.RetryBaseDelay = d.RetryBaseDelay
	}
	if o.Breaker == (BreakerSettings{}) {
		o.Breaker = d.Breaker
	}
	if o.RequestsPerSecond > 0 && o.Burst <= 0 {
		o.Burst = 1
	}
	return o
}

// errorParser turns a non-2xx response body into a service specific error.
// Returning nil falls back to *HTTPStatusError.
type errorParser func(operation string, statusCode int, body []byte) error

// requester performs HTTP calls for one upstream service with throttling,
// 429 backoff and circuit breaking.
type requester struct {
	service        string
	client         *http.Client
	base           http.RoundTripper
	timeout        time.Duration
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	breaker        *breaker
	parseError     errorParser
}

func newRequester(service string, opts ClientOptions, parseError errorParser) *requester {
	opts = opts.withDefaults()

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.Burst)
	}

	return &requester{
		service:        service,
		client:         client,
		base:           base,
		timeout:        opts.Timeout,
		limiter:        limiter,
		maxRetries:     opts.MaxRetries,
		retryBaseDelay: opts.RetryBaseDelay,
		breaker:        newBreaker(service+"-api", opts.Breaker),
		parseError:     parseError,
	}
}

// do performs one logical call. newRequest is invoked for every attempt so
// request bodies can be replayed. handle receives the body of a 2xx response
// and runs inside the breaker, so errors it returns count as failures.
func (r *requester) do(ctx context.Context, operation string, newRequest func(context.Context) (*http.Request, error), handle func([]byte) error) error {
	return r.call(ctx, operation, func(ctx context.Context) error {
		body, err := r.fetch(ctx, operation, newRequest)
		if err != nil {
			return err
		}
		return handle(body)
	})
}

// call runs fn under the circuit breaker, records the outcome and prefixes
// any error with the service and operation. The context passed to fn carries
// the operation name for the requester transport.
func (r *requester) call(ctx context.Context, operation string, fn func(context.Context) error) error {
	start := time.Now()
	err := r.breaker.execute(func() error {
		return fn(withOperation(ctx, operation))
	})
	metrics.RecordUpstreamCall(r.service, operation, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s %s: %w", r.service, operation, redactURLError(err))
	}
	return nil
}

// fetch sends the request, retrying on HTTP 429, and returns a 2xx body.
func (r *requester) fetch(ctx context.Context, operation string, newRequest func(context.Context) (*http.Request, error)) ([]byte, error) {
	resp, err := r.doRequestWithRateLimit(ctx, operation, newRequest, r.client.Do)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, r.statusError(operation, resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// statusError builds the error for a non-2xx response.
func (r *requester) statusError(operation string, resp *http.Response) error {
	body := readBodyForError(resp.Body)
	if r.parseError != nil {
		if perr := r.parseError(operation, resp.StatusCode, body); perr != nil {
			return perr
		}
	}
	return &HTTPStatusError{
		Service:    r.service,
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}
}

// doRequestWithRateLimit performs an HTTP request with automatic rate limit handling.
// Implements exponential backoff for HTTP 429 responses (1s, 2s, 4s, ...).
// The context is used for cancellation during limiter and backoff waits.
func (r *requester) doRequestWithRateLimit(ctx context.Context, operation string, newRequest func(context.Context) (*http.Request, error), send func(*http.Request) (*http.Response, error)) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := newRequest(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := send(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("HTTP request failed: %w", redactURLError(err))
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Rate limited (HTTP 429) - close body and retry with backoff
		_ = resp.Body.Close()
		metrics.RecordUpstreamRateLimited(r.service, operation)

		if attempt >= r.maxRetries {
			return nil, fmt.Errorf("%w after %d retries (HTTP 429)", ErrRateLimited, r.maxRetries)
		}

		delay := r.retryBaseDelay * time.Duration(1<<uint(attempt))

		// Retry-After in seconds (RFC 6585)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				delay = time.Duration(seconds) * time.Second
			}
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// httpClient returns a client for SDKs that build their own requests. Every
// exchange goes through the limiter and 429 backoff, and non-2xx responses
// come back as errors so the SDK never decodes an error body as a result.
func (r *requester) httpClient() *http.Client {
	return &http.Client{
		Timeout:   r.timeout,
		Transport: &transport{r: r},
	}
}

// transport is the http.RoundTripper behind httpClient.
type transport struct {
	r *requester
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		body = b
	}

	ctx := req.Context()
	operation := operationFrom(ctx)
	resp, err := t.r.doRequestWithRateLimit(ctx, operation, func(ctx context.Context) (*http.Request, error) {
		out := req.Clone(ctx)
		if body != nil {
			out.Body = io.NopCloser(bytes.NewReader(body))
			out.ContentLength = int64(len(body))
		}
		return out, nil
	}, t.r.base.RoundTrip)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, t.r.statusError(operation, resp)
	}
	return resp, nil
}

type operationKey struct{}

func withOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey{}, operation)
}

func operationFrom(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey{}).(string); ok {
		return op
	}
	return "unknown"
}

// readBodyForError reads the response body for error reporting (max 64KB)
// Returns the body content or a placeholder message if reading fails
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// redactURLError masks API keys in the URL that *url.Error prints, since
// Google and WeatherAPI take the key as a query parameter.
func redactURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = logging.RedactURL(uerr.URL)
	}
	return err
}
