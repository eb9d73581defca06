// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package main is the entry point for the Roadtrip server.

Roadtrip plans road trips: it combines Google Maps routing and traffic,
WeatherAPI.com forecasts and LLM-ranked place recommendations into a single
trip plan served over a JSON API.

# Application Architecture

Services run under a Suture v4 supervisor tree:

	RootSupervisor ("roadtrip")
	├── StorageSupervisor ("storage-layer")
	│   └── Cache GC (only with cache.backend=badger)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment variables
 2. Logging: zerolog, JSON or console output
 3. Cache: in-memory stores with an optional badger or redis tier
 4. Upstream clients: Google Maps, WeatherAPI.com and the chat-completion model
 5. Recommendation pipeline, route scanner and trip planner
 6. HTTP router (chi) and the supervisor tree

# Configuration

Required environment variables:

	GOOGLE_MAPS_API_KEY     Google Maps web services key
	WEATHER_API_KEY         WeatherAPI.com key
	OPENAI_API_KEY          Azure OpenAI or OpenAI key
	AZURE_OPENAI_ENDPOINT   Azure OpenAI resource endpoint (provider azure)

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server then gets
server.shutdown_timeout to finish in-flight trip plans before the cache tier
is closed.
*/
package main
