// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

/*
Package config loads and validates Roadtrip configuration.

Configuration is layered with koanf, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, config.yaml or /etc/roadtrip/config.yaml
 3. Environment variables, mapped explicitly by envMappings

Only mapped environment variables are read. Comma-separated values are split
for list settings (CORS_ORIGINS, RECOMMEND_DEFAULT_PREFERENCES).

# Required Variables

  - GOOGLE_MAPS_API_KEY: Geocoding, Places, Directions and Distance Matrix
  - OPENAI_API_KEY: chat-completion key used by the ranker
  - AZURE_OPENAI_ENDPOINT: required unless OPENAI_PROVIDER=openai
  - WEATHER_API_KEY: WeatherAPI.com key

# Common Optional Variables

Server:
  - HTTP_PORT (or PORT): listen port (default: 8000)
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - ENVIRONMENT: development or production (default: development)

Security:
  - CORS_ORIGINS: allowed origins (default: http://localhost:3000)
  - RATE_LIMIT_REQUESTS / RATE_LIMIT_WINDOW: per-IP limit (default: 60 per 1m)

Cache:
  - CACHE_TTL: entry lifetime (default: 1h)
  - CACHE_BACKEND: memory, badger or redis (default: memory)
  - CACHE_BADGER_PATH, REDIS_ADDR: tier locations

Planner:
  - TIMEOUT_ROUTE, TIMEOUT_TRAFFIC, TIMEOUT_WEATHER, TIMEOUT_RECOMMENDATIONS,
    TIMEOUT_ROUTE_ATTRACTIONS: per-component deadlines

# Example config.yaml

	server:
	  port: 8000
	cache:
	  backend: badger
	  badger_path: /var/lib/roadtrip/cache
	recommend:
	  default_preferences: [museum, park, aquarium]
	scanner:
	  max_distance_meters: 3000

Secrets should come from the environment rather than the file.
*/
package config
