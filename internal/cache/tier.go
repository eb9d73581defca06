// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"context"
	"time"
)

// Tier is a persistent second level behind the in-memory stores.
//
// Keys passed to a Tier are already namespaced by category ("geocode:..."),
// so implementations can treat them as opaque. Data is the JSON encoded
// record including the original store time; ttl is the remaining lifetime
// the backend should enforce on its own.
type Tier interface {
	// Name identifies the backend in logs and metrics ("badger", "redis").
	Name() string

	// Get returns the stored record. found is false when the key is absent.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)

	// Set stores a record that the backend may drop after ttl.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// DeletePrefix removes every key that starts with prefix.
	DeletePrefix(ctx context.Context, prefix string) error

	// Close releases the backend.
	Close() error
}

// record is the persisted form of an entry.
type record[V any] struct {
	Value    V         `json:"value"`
	StoredAt time.Time `json:"stored_at"`
}
