// Roadtrip - AI Travel Planning Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadtrip

package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/roadtrip/internal/logging"
)

// BadgerConfig configures the on-disk cache tier.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is set.
	Path string

	// InMemory runs badger without touching disk (tests).
	InMemory bool

	// SyncWrites fsyncs every write. Cache data is reproducible, so this is
	// normally off.
	SyncWrites bool

	// GCRatio is the discard ratio for value log GC. Default 0.5.
	GCRatio float64
}

// ErrTierClosed is returned by tier operations after Close.
var ErrTierClosed = errors.New("cache tier is closed")

// BadgerTier stores cache records in BadgerDB using native entry TTLs.
type BadgerTier struct {
	db      *badger.DB
	gcRatio float64

	mu     sync.RWMutex
	closed bool
}

// OpenBadger opens (or creates) the badger database for the cache tier.
func OpenBadger(cfg BadgerConfig) (*BadgerTier, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger cache path is required")
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	ratio := cfg.GCRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Badger cache tier opened")

	return &BadgerTier{db: db, gcRatio: ratio}, nil
}

// Name implements Tier.
func (b *BadgerTier) Name() string {
	return "badger"
}

// Get implements Tier.
func (b *BadgerTier) Get(_ context.Context, key string) ([]byte, bool, error) {
	if b.isClosed() {
		return nil, false, ErrTierClosed
	}

	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return data, true, nil
}

// Set implements Tier.
func (b *BadgerTier) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	if b.isClosed() {
		return ErrTierClosed
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), data)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// DeletePrefix implements Tier.
func (b *BadgerTier) DeletePrefix(_ context.Context, prefix string) error {
	if b.isClosed() {
		return ErrTierClosed
	}
	if err := b.db.DropPrefix([]byte(prefix)); err != nil {
		return fmt.Errorf("drop prefix %s: %w", prefix, err)
	}
	return nil
}

// RunGC reclaims value log space until badger reports nothing left to rewrite.
func (b *BadgerTier) RunGC() error {
	if b.isClosed() {
		return ErrTierClosed
	}
	for {
		err := b.db.RunValueLogGC(b.gcRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// Close implements Tier.
func (b *BadgerTier) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	logging.Info().Msg("Badger cache tier closed")
	return nil
}

func (b *BadgerTier) isClosed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}
