// Package ledger is the report engine: it records validated transactions
// into a month-indexed store and renders listings and monthly reports.
//
// Every operation writes its result as lines of text to the writer the
// Ledger was built with and returns an error when the request is rejected.
// Validation always completes before the store is touched.
package ledger

import (
	"context"
	"fmt"
	"io"

	"ledger/internal/core"
	applog "ledger/internal/log"
	"ledger/internal/storage"
)

type Ledger struct {
	store  storage.Store
	out    io.Writer
	logger *applog.Logger
	events *applog.StructuredLogger
}

func New(store storage.Store, out io.Writer, logger *applog.Logger) *Ledger {
	if logger == nil {
		logger = applog.Discard()
	}
	logger = logger.WithComponent(applog.ComponentLedger)
	return &Ledger{
		store:  store,
		out:    out,
		logger: logger,
		events: applog.NewStructuredLogger(logger),
	}
}

// AddExpense validates and records an expense.
func (l *Ledger) AddExpense(ctx context.Context, dateText string, amount core.Money, category string) error {
	date, err := core.ValidateExpense(dateText, amount, category)
	if err != nil {
		l.events.LogRejected(ctx, applog.OpAppend, err)
		return err
	}
	if err := l.record(ctx, core.NewExpense(date, amount, category)); err != nil {
		return err
	}
	return l.printf("Expense added: Date=%s, Amount=%s, Category=\"%s\"\n", dateText, amount, category)
}

// AddIncome validates and records an income. Income has no category input.
func (l *Ledger) AddIncome(ctx context.Context, dateText string, amount core.Money) error {
	date, err := core.ValidateIncome(dateText, amount)
	if err != nil {
		l.events.LogRejected(ctx, applog.OpAppend, err)
		return err
	}
	if err := l.record(ctx, core.NewIncome(date, amount)); err != nil {
		return err
	}
	return l.printf("Income added: Date=%s, Amount=%s\n", dateText, amount)
}

func (l *Ledger) record(ctx context.Context, t core.Transaction) error {
	ref, err := l.store.Append(ctx, t)
	if err != nil {
		l.events.LogStoreFailure(ctx, applog.OpAppend, err,
			applog.NewFields().WithTransaction(t.Kind.String(), t.Date.String(), t.Amount.String(), t.Category))
		return fmt.Errorf("record %s: %w", t.Kind, err)
	}
	l.events.LogTransactionRecorded(ctx, t.Kind.String(), t.Date.String(), t.Amount.String(), t.Category, ref)
	return nil
}

// ListTransactions prints every month, oldest first.
func (l *Ledger) ListTransactions(ctx context.Context) error {
	keys, err := l.store.Months(ctx)
	if err != nil {
		l.events.LogStoreFailure(ctx, applog.OpList, err, nil)
		return fmt.Errorf("list months: %w", err)
	}

	months := make([]MonthListing, 0, len(keys))
	for _, key := range keys {
		txs, _, err := l.store.Bucket(ctx, key)
		if err != nil {
			l.events.LogStoreFailure(ctx, applog.OpList, err, applog.NewFields().WithMonth(key.Year, key.Month))
			return fmt.Errorf("read bucket %s: %w", key, err)
		}
		incomes, expenses := core.Split(txs)
		months = append(months, MonthListing{Key: key, Incomes: incomes, Expenses: expenses})
	}

	l.logger.DebugContext(ctx, "Listing transactions", "months", len(months))
	return l.render(func(w io.Writer) error { return renderListing(w, months) })
}

// GenerateMonthlyReport prints totals and per-category expenses of one
// month. A month without transactions is reported, not treated as an error.
func (l *Ledger) GenerateMonthlyReport(ctx context.Context, year, month int) error {
	key, err := core.NewMonthKey(year, month)
	if err != nil {
		l.events.LogRejected(ctx, applog.OpReport, err)
		return err
	}

	txs, ok, err := l.store.Bucket(ctx, key)
	if err != nil {
		l.events.LogStoreFailure(ctx, applog.OpReport, err, applog.NewFields().WithMonth(year, month))
		return fmt.Errorf("read bucket %s: %w", key, err)
	}
	if !ok {
		return l.printf("No transactions found for %s\n", key)
	}

	summary := core.Summarize(key, txs)
	l.logger.DebugContext(ctx, "Generated monthly report",
		applog.FieldMonthKey, key.String(),
		"categories", len(summary.ByCategory))
	return l.render(func(w io.Writer) error { return renderReport(w, summary) })
}

func (l *Ledger) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(l.out, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (l *Ledger) render(fn func(io.Writer) error) error {
	if err := fn(l.out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
