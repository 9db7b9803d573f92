package memory

import (
	"context"
	"testing"

	"ledger/internal/core"
	"ledger/internal/storage"
)

var _ storage.Store = (*Store)(nil)

func TestMemoryStoreAppendAndBucket(t *testing.T) {
	ctx := context.Background()
	s := New()

	ref, err := s.Append(ctx, core.NewExpense(core.NewDate(2024, 1, 16), core.NewMoney(1000), "Food"))
	if err != nil || ref != "mem:1" {
		t.Fatalf("unexpected append: ref=%q err=%v", ref, err)
	}
	ref, err = s.Append(ctx, core.NewIncome(core.NewDate(2024, 1, 15), core.NewMoney(5000)))
	if err != nil || ref != "mem:2" {
		t.Fatalf("unexpected append: ref=%q err=%v", ref, err)
	}

	txs, ok, err := s.Bucket(ctx, core.MonthKey{Year: 2024, Month: 1})
	if err != nil || !ok || len(txs) != 2 {
		t.Fatalf("unexpected bucket: txs=%v ok=%v err=%v", txs, ok, err)
	}
	if txs[0].Kind != core.Expense || txs[1].Kind != core.Income {
		t.Fatalf("expected insertion order, got %+v", txs)
	}

	// callers get a copy
	txs[0].Category = "changed"
	again, _, _ := s.Bucket(ctx, core.MonthKey{Year: 2024, Month: 1})
	if again[0].Category != "Food" {
		t.Fatalf("bucket was mutated through a returned slice")
	}

	if _, ok, _ := s.Bucket(ctx, core.MonthKey{Year: 2024, Month: 2}); ok {
		t.Fatalf("expected no bucket for an empty month")
	}
}

func TestMemoryStoreMonthsAscending(t *testing.T) {
	ctx := context.Background()
	s := New()
	dates := []core.Date{
		core.NewDate(2024, 2, 1),
		core.NewDate(2023, 12, 31),
		core.NewDate(2024, 1, 5),
		core.NewDate(2024, 2, 20),
	}
	for _, d := range dates {
		if _, err := s.Append(ctx, core.NewIncome(d, core.NewMoney(1))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	keys, err := s.Months(ctx)
	if err != nil {
		t.Fatalf("months: %v", err)
	}
	want := []string{"2023-12", "2024-01", "2024-02"}
	if len(keys) != len(want) {
		t.Fatalf("unexpected keys %v", keys)
	}
	for i, k := range keys {
		if k.String() != want[i] {
			t.Fatalf("key %d: got %s, want %s", i, k, want[i])
		}
	}
}

func TestMemoryStoreRejectsNonPositive(t *testing.T) {
	s := New()
	if _, err := s.Append(context.Background(), core.NewIncome(core.NewDate(2024, 1, 1), core.NewMoney(0))); err == nil {
		t.Fatalf("expected error")
	}
	if keys, _ := s.Months(context.Background()); len(keys) != 0 {
		t.Fatalf("rejected transaction was stored: %v", keys)
	}
}
