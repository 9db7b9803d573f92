package log

import (
	"context"
	"log/slog"
)

// ContextKey type for context keys
type ContextKey string

const (
	// LoggerContextKey is the context key for the logger
	LoggerContextKey ContextKey = "logger"
)

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// FromContext extracts a logger from the context
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(LoggerContextKey).(*Logger); ok {
		return logger
	}
	// Return default logger if not found
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// StructuredLogger provides structured logging methods with context awareness
type StructuredLogger struct {
	logger *Logger
}

// NewStructuredLogger creates a new structured logger
func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{
		logger: logger,
	}
}

// LogTransactionRecorded logs a successful add
func (sl *StructuredLogger) LogTransactionRecorded(ctx context.Context, kind, date, amount, category, ref string) {
	fields := NewFields().
		WithTransaction(kind, date, amount, category).
		WithOperation(OpAppend).
		ToSlice()

	fields = append(fields, FieldRef, ref)

	sl.logger.InfoContext(ctx, "Transaction recorded", fields...)
}

// LogRejected logs input refused by validation
func (sl *StructuredLogger) LogRejected(ctx context.Context, op string, err error) {
	fields := NewFields().
		WithError(err).
		WithOperation(op)
	fields[FieldErrorType] = ErrorTypeValidation

	sl.logger.DebugContext(ctx, "Input rejected", fields.ToSlice()...)
}

// LogStoreFailure logs a failed store access
func (sl *StructuredLogger) LogStoreFailure(ctx context.Context, op string, err error, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	fields = fields.
		WithError(err).
		WithOperation(op)
	fields[FieldErrorType] = ErrorTypeDatabase

	sl.logger.ErrorContext(ctx, "Store access failed", fields.ToSlice()...)
}
