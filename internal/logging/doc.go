// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

// Package logging provides zerolog-based structured logging for Roadtrip.
//
// Output is JSON by default, one object per line, with every line tagged
// "service":"roadtrip". Console output is available for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Str("addr", ":8000").Msg("Server listening")
//	log := logging.WithComponent("weather")
//	log.Warn().Str("stop", "Memphis, TN").Err(err).Msg("Weather lookup failed")
//
// # Configuration
//
// The config package maps these settings onto Config:
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json or console (default: json)
//	LOG_CALLER  include file:line (default: false)
//
// # Request Context
//
// The HTTP request-id middleware stores a request id and a fresh correlation
// id in the request context. Ctx and CtxWith read them back so that every
// line logged while planning a trip can be joined on request_id:
//
//	logging.Ctx(ctx).Info().Int("failed", n).Msg("Trip plan finished")
//
// # Redaction
//
// Upstream URLs carry API keys in their query strings. RedactURL masks
// sensitive parameters before a URL or transport error reaches a log line
// or a client response.
//
// # slog
//
// NewSlogLogger adapts a zerolog logger to *slog.Logger for libraries that
// only speak slog, such as the sutureslog event hook.
package logging
