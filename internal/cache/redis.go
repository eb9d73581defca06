// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/roadtrip/internal/logging"
)

// RedisConfig configures the shared cache tier.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// KeyPrefix namespaces every key so several deployments can share a server.
	KeyPrefix string
}

// RedisTier stores cache records in Redis with key expiry.
type RedisTier struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to Redis and verifies the connection with PING.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*RedisTier, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	logging.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("Redis cache tier connected")
	return NewRedisTier(client, cfg.KeyPrefix), nil
}

// NewRedisTier wraps an existing client.
func NewRedisTier(client *redis.Client, keyPrefix string) *RedisTier {
	return &RedisTier{client: client, prefix: keyPrefix}
}

// Name implements Tier.
func (r *RedisTier) Name() string {
	return "redis"
}

// Get implements Tier.
func (r *RedisTier) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return data, true, nil
}

// Set implements Tier.
func (r *RedisTier) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// DeletePrefix implements Tier using SCAN so large keyspaces are not blocked.
func (r *RedisTier) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	match := r.prefix + prefix + "*"
	for {
		keys, next, err := r.client.Scan(ctx, cursor, match, 500).Result()
		if err != nil {
			return fmt.Errorf("scan %s: %w", match, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete %d keys: %w", len(keys), err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close implements Tier.
func (r *RedisTier) Close() error {
	return r.client.Close()
}
