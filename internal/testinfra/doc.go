// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

// Package testinfra starts Docker containers for integration tests through
// testcontainers-go.
//
// Everything here builds only with the integration tag:
//
//	go test -tags integration ./internal/cache/...
//
// # Redis Container
//
// RedisContainer backs the Redis cache tier tests with a real server:
//
//	func TestRedisTier(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    redis, err := testinfra.NewRedisContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, redis)
//
//	    tier, err := cache.OpenRedis(ctx, cache.RedisConfig{Addr: redis.Addr})
//	    // ...
//	}
//
// Tests are skipped when Docker is unavailable. The first run pulls the
// image; later runs use the local copy.
package testinfra
