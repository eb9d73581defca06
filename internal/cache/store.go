// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/roadtrip/internal/metrics"
)

// tierTimeout bounds a single persistent tier call made from Get or Set.
const tierTimeout = 2 * time.Second

// entry is a cached value with the time it was stored.
type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Store is the cache for a single category holding values of type V.
//
// An entry is visible while now - storedAt < ttl. Expired entries are deleted
// lazily on Get; there is no background sweep. Values holding slices or
// pointers are copied on Set and on Get, so callers may mutate what they
// stored or received without touching the cached entry.
type Store[V any] struct {
	category Category
	clone    func(V) V
	ttl      time.Duration
	now      func() time.Time
	tier     Tier
	logger   zerolog.Logger

	mu      sync.RWMutex
	entries map[string]entry[V]
}

// newStore creates a store. clone may be nil for plain values.
func newStore[V any](category Category, o *options, clone func(V) V) *Store[V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &Store[V]{
		category: category,
		clone:    clone,
		ttl:      o.ttl,
		now:      o.clock,
		tier:     o.tier,
		logger:   o.logger.With().Str("category", string(category)).Logger(),
		entries:  make(map[string]entry[V]),
	}
}

// Category returns the category this store serves.
func (s *Store[V]) Category() Category {
	return s.category
}

// Get returns the value for key if present and not expired.
//
// On an in-memory miss the persistent tier, if configured, is consulted. A
// value read back from the tier keeps its original store time, so it expires
// at the same instant it would have in memory. Tier failures count as misses.
func (s *Store[V]) Get(key string) (V, bool) {
	now := s.now()

	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		if s.fresh(e.storedAt, now) {
			metrics.CacheHits.WithLabelValues(string(s.category), "memory").Inc()
			return s.clone(e.value), true
		}
		s.expire(key, e.storedAt)
	}

	if v, ok := s.getFromTier(key, now); ok {
		metrics.CacheHits.WithLabelValues(string(s.category), "persistent").Inc()
		return v, true
	}

	metrics.CacheMisses.WithLabelValues(string(s.category)).Inc()
	var zero V
	return zero, false
}

// Set stores value under key, overwriting any previous entry and resetting its
// store time.
func (s *Store[V]) Set(key string, value V) {
	storedAt := s.now()

	s.mu.Lock()
	s.entries[key] = entry[V]{value: s.clone(value), storedAt: storedAt}
	size := len(s.entries)
	s.mu.Unlock()

	metrics.CacheSize.WithLabelValues(string(s.category)).Set(float64(size))
	s.setInTier(key, value, storedAt)
}

// Len returns the number of in-memory entries, including expired entries that
// have not been read since they expired.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// clear drops every in-memory entry and the category's keys in the tier.
func (s *Store[V]) clear() {
	s.mu.Lock()
	evicted := len(s.entries)
	s.entries = make(map[string]entry[V])
	s.mu.Unlock()

	metrics.CacheEvictions.WithLabelValues(string(s.category)).Add(float64(evicted))
	metrics.CacheSize.WithLabelValues(string(s.category)).Set(0)

	if s.tier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), tierTimeout)
	defer cancel()
	if err := s.tier.DeletePrefix(ctx, s.category.prefix()); err != nil {
		s.tierFailure("delete", err)
	}
}

func (s *Store[V]) fresh(storedAt, now time.Time) bool {
	return now.Sub(storedAt) < s.ttl
}

// expire removes key unless it was overwritten after storedAt was read.
func (s *Store[V]) expire(key string, storedAt time.Time) {
	s.mu.Lock()
	if cur, ok := s.entries[key]; ok && cur.storedAt.Equal(storedAt) {
		delete(s.entries, key)
		metrics.CacheEvictions.WithLabelValues(string(s.category)).Inc()
	}
	size := len(s.entries)
	s.mu.Unlock()

	metrics.CacheSize.WithLabelValues(string(s.category)).Set(float64(size))
}

func (s *Store[V]) getFromTier(key string, now time.Time) (V, bool) {
	var zero V
	if s.tier == nil {
		return zero, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), tierTimeout)
	defer cancel()

	data, found, err := s.tier.Get(ctx, s.category.prefix()+key)
	if err != nil {
		s.tierFailure("get", err)
		return zero, false
	}
	if !found {
		return zero, false
	}

	var rec record[V]
	if err := json.Unmarshal(data, &rec); err != nil {
		s.tierFailure("decode", err)
		return zero, false
	}
	if !s.fresh(rec.StoredAt, now) {
		return zero, false
	}

	s.mu.Lock()
	if cur, ok := s.entries[key]; !ok || cur.storedAt.Before(rec.StoredAt) {
		s.entries[key] = entry[V]{value: rec.Value, storedAt: rec.StoredAt}
	}
	size := len(s.entries)
	s.mu.Unlock()

	metrics.CacheSize.WithLabelValues(string(s.category)).Set(float64(size))
	return s.clone(rec.Value), true
}

func (s *Store[V]) setInTier(key string, value V, storedAt time.Time) {
	if s.tier == nil {
		return
	}

	data, err := json.Marshal(record[V]{Value: value, StoredAt: storedAt})
	if err != nil {
		s.tierFailure("encode", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), tierTimeout)
	defer cancel()
	if err := s.tier.Set(ctx, s.category.prefix()+key, data, s.ttl); err != nil {
		s.tierFailure("set", err)
	}
}

func (s *Store[V]) tierFailure(op string, err error) {
	metrics.CacheTierErrors.WithLabelValues(s.tier.Name(), op).Inc()
	s.logger.Warn().Err(err).Str("backend", s.tier.Name()).Str("operation", op).
		Msg("Persistent cache tier failed, treating as miss")
}
