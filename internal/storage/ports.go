package storage

import (
	"context"

	"ledger/internal/core"
)

// Ports for the transaction store.
type (
	TransactionWriter interface {
		// Append adds t to the bucket of its month, creating the bucket if
		// needed, and returns a backend specific reference.
		Append(ctx context.Context, t core.Transaction) (ref string, err error)
	}

	MonthIndex interface {
		// Months returns every key that has a bucket, ascending.
		Months(ctx context.Context) ([]core.MonthKey, error)
	}

	BucketReader interface {
		// Bucket returns a copy of the transactions stored under key, in
		// insertion order. ok is false when no bucket exists.
		Bucket(ctx context.Context, key core.MonthKey) (txs []core.Transaction, ok bool, err error)
	}

	// Store is everything the report engine needs.
	Store interface {
		TransactionWriter
		MonthIndex
		BucketReader
	}
)
