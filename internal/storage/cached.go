package storage

import (
	"context"
	"io"
	"log/slog"
	"slices"

	"ledger/internal/cache"
	"ledger/internal/core"
	applog "ledger/internal/log"
)

// CachedStore keeps recently read month buckets in memory. Append drops the
// entry of the written month, so every reader sharing this CachedStore sees
// its writes. Writers that bypass it are not tracked.
type CachedStore struct {
	Store
	buckets cache.Cache[core.MonthKey, []core.Transaction]
}

// NewCachedStore wraps store with a bucket cache of at most size months.
func NewCachedStore(store Store, size int) *CachedStore {
	return &CachedStore{
		Store:   store,
		buckets: cache.NewLRU[core.MonthKey, []core.Transaction](size),
	}
}

// Append implements storage.TransactionWriter
func (s *CachedStore) Append(ctx context.Context, t core.Transaction) (string, error) {
	ref, err := s.Store.Append(ctx, t)
	// Invalidate on failure too.
	s.buckets.Delete(t.MonthKey())
	return ref, err
}

// Bucket implements storage.BucketReader. Missing months are not cached.
func (s *CachedStore) Bucket(ctx context.Context, key core.MonthKey) ([]core.Transaction, bool, error) {
	if txs, ok := s.buckets.Get(key); ok {
		slog.DebugContext(ctx, "Bucket cache hit",
			applog.FieldComponent, applog.ComponentStorage,
			applog.FieldMonthKey, key.String())
		return slices.Clone(txs), true, nil
	}

	txs, ok, err := s.Store.Bucket(ctx, key)
	if err != nil || !ok {
		return txs, ok, err
	}
	s.buckets.Set(key, slices.Clone(txs))
	return txs, true, nil
}

// Close closes the wrapped store when it holds resources.
func (s *CachedStore) Close() error {
	if c, ok := s.Store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
