package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

// Publisher announces transactions that were stored.
type Publisher interface {
	PublishTransactionRecorded(ctx context.Context, ref string, t core.Transaction) error
}

// TransactionService orchestrates appends across the store and the publisher.
// It is itself a storage.Store, so the report engine does not know whether
// events are published.
type TransactionService struct {
	store     storage.Store
	publisher Publisher
}

func NewTransactionService(store storage.Store, publisher Publisher) *TransactionService {
	return &TransactionService{
		store:     store,
		publisher: publisher,
	}
}

// Append saves the transaction and publishes a recorded event
func (s *TransactionService) Append(ctx context.Context, t core.Transaction) (string, error) {
	ref, err := s.store.Append(ctx, t)
	if err != nil {
		return "", fmt.Errorf("save transaction: %w", err)
	}

	if err := s.publish(ctx, ref, t); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction recorded message",
			applog.FieldOperation, applog.OpPublish,
			applog.FieldRef, ref,
			applog.FieldError, err,
			applog.FieldErrorType, applog.ErrorTypeNetwork)
		// The transaction is stored; a lost event does not undo it.
	}

	return ref, nil
}

// Months implements storage.MonthIndex
func (s *TransactionService) Months(ctx context.Context) ([]core.MonthKey, error) {
	return s.store.Months(ctx)
}

// Bucket implements storage.BucketReader
func (s *TransactionService) Bucket(ctx context.Context, key core.MonthKey) ([]core.Transaction, bool, error) {
	return s.store.Bucket(ctx, key)
}

func (s *TransactionService) publish(ctx context.Context, ref string, t core.Transaction) error {
	if s.publisher == nil {
		slog.DebugContext(ctx, "No publisher configured, skipping recorded message")
		return nil
	}

	return s.publisher.PublishTransactionRecorded(ctx, ref, t)
}

// Close closes the store and the publisher when they hold resources
func (s *TransactionService) Close() error {
	var errs []error

	if c, ok := s.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("storage: %w", err))
		}
	}

	if c, ok := s.publisher.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close transaction service: %v", errs)
	}

	return nil
}
