package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"ledger/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is a Store backed by an in-memory SQLite database.
// Each repository gets its own uniquely named database, which lives as long
// as the repository's connection is open.
type SQLiteRepository struct {
	db *sql.DB
}

// MemoryDSN returns a shared-cache memory DSN with a unique name.
func MemoryDSN() string {
	return fmt.Sprintf("file:ledger-%s?mode=memory&cache=shared", uuid.NewString())
}

func NewSQLiteRepository(ctx context.Context) (*SQLiteRepository, error) {
	dsn := MemoryDSN()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single long-lived connection keeps the memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dsn); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements storage.TransactionWriter
func (r *SQLiteRepository) Append(ctx context.Context, t core.Transaction) (string, error) {
	if err := t.Amount.Validate(); err != nil {
		return "", err
	}
	key := t.MonthKey()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (kind, occurred_on, year, month, amount, category)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.Kind.String(), t.Date.String(), key.Year, key.Month, t.Amount.String(), t.Category)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("read insert id: %w", err)
	}

	slog.DebugContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"kind", t.Kind.String(),
		"amount", t.Amount.String(),
		"month_key", key.String())

	return strconv.FormatInt(id, 10), nil
}

// Months implements storage.MonthIndex
func (r *SQLiteRepository) Months(ctx context.Context) ([]core.MonthKey, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT year, month FROM transactions ORDER BY year, month`)
	if err != nil {
		return nil, fmt.Errorf("query months: %w", err)
	}
	defer rows.Close()

	var keys []core.MonthKey
	for rows.Next() {
		var k core.MonthKey
		if err := rows.Scan(&k.Year, &k.Month); err != nil {
			return nil, fmt.Errorf("scan month: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate months: %w", err)
	}
	return keys, nil
}

// Bucket implements storage.BucketReader
func (r *SQLiteRepository) Bucket(ctx context.Context, key core.MonthKey) ([]core.Transaction, bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, occurred_on, amount, category FROM transactions
		 WHERE year = ? AND month = ? ORDER BY id`, key.Year, key.Month)
	if err != nil {
		return nil, false, fmt.Errorf("query bucket %s: %w", key, err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var kind, date, amount, category string
		if err := rows.Scan(&kind, &date, &amount, &category); err != nil {
			return nil, false, fmt.Errorf("scan transaction: %w", err)
		}
		t, err := decodeTransaction(kind, date, amount, category)
		if err != nil {
			return nil, false, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterate bucket %s: %w", key, err)
	}
	return txs, len(txs) > 0, nil
}

func decodeTransaction(kind, date, amount, category string) (core.Transaction, error) {
	d, err := core.ParseDate(date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("decode date %q: %w", date, err)
	}
	m, err := core.ParseAmount(amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("decode amount %q: %w", amount, err)
	}
	switch kind {
	case core.Income.String():
		return core.NewIncome(d, m), nil
	case core.Expense.String():
		return core.NewExpense(d, m, category), nil
	default:
		return core.Transaction{}, fmt.Errorf("decode kind %q: unknown", kind)
	}
}
