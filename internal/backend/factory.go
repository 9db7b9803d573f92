package backend

import (
	"context"
	"fmt"

	"ledger/internal/amqp"
	applog "ledger/internal/log"
	"ledger/internal/services"
	"ledger/internal/storage"
	"ledger/internal/storage/memory"
)

// bucketCacheSize bounds the months kept by the bucket cache.
const bucketCacheSize = 24

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var store storage.Store
	switch config.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
		}
		store = repo
		f.logger.Info("Initialized SQLite backend", applog.FieldBackend, config.Type.String())
	case MemoryBackend:
		store = memory.New()
		f.logger.Info("Initialized memory backend", applog.FieldBackend, config.Type.String())
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}

	cached := storage.NewCachedStore(store, bucketCacheSize)
	service := services.NewTransactionService(cached, f.createPublisher(ctx, config))

	return &BackendResult{
		Store:   service,
		Cleanup: service.Close,
	}, nil
}

// createPublisher returns nil when AMQP is off or unreachable; the ledger
// keeps working without events.
func (f *DefaultFactory) createPublisher(ctx context.Context, config Config) services.Publisher {
	if config.AMQPURL == "" {
		return nil
	}

	client, err := amqp.NewClient(ctx, config.AMQPURL, config.AMQPExchange, config.AMQPQueue, config.AMQPConnectRetries)
	if err != nil {
		f.logger.WithComponent(applog.ComponentAMQP).Warn("Failed to initialize AMQP client, continuing without events",
			applog.FieldError, err,
			applog.FieldErrorType, applog.ErrorTypeNetwork)
		return nil
	}

	f.logger.WithComponent(applog.ComponentAMQP).Info("Initialized AMQP client",
		"exchange", config.AMQPExchange,
		"queue", config.AMQPQueue)
	return client
}
