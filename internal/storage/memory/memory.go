package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"ledger/internal/core"
)

// Store keeps month buckets in a map. Nothing survives the process.
type Store struct {
	mu      sync.Mutex
	buckets map[core.MonthKey][]core.Transaction
	count   int
}

func New() *Store {
	return &Store{buckets: make(map[core.MonthKey][]core.Transaction)}
}

// Append stores the transaction and returns a synthetic row reference.
func (s *Store) Append(_ context.Context, t core.Transaction) (string, error) {
	if err := t.Amount.Validate(); err != nil {
		return "", err
	}
	key := t.MonthKey()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[key] = append(s.buckets[key], t)
	s.count++
	return fmt.Sprintf("mem:%d", s.count), nil
}

// Months returns the keys of all buckets, ascending.
func (s *Store) Months(_ context.Context) ([]core.MonthKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]core.MonthKey, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, core.MonthKey.Compare)
	return keys, nil
}

// Bucket returns a copy of the month's transactions.
func (s *Store) Bucket(_ context.Context, key core.MonthKey) ([]core.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs, ok := s.buckets[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(txs), true, nil
}
