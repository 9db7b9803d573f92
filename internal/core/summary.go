package core

import (
	"slices"
	"strings"
)

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// MonthlySummary is the aggregated view of one month bucket.
type MonthlySummary struct {
	Key           MonthKey
	TotalIncome   Money
	TotalExpenses Money
	// ByCategory holds expense totals only, sorted by name (ordinal).
	ByCategory []CategoryAmount
}

// Summarize aggregates a bucket. Expenses are grouped by exact category.
func Summarize(key MonthKey, txs []Transaction) MonthlySummary {
	s := MonthlySummary{Key: key, TotalIncome: Sum(), TotalExpenses: Sum()}
	index := map[string]int{}
	for _, t := range txs {
		switch t.Kind {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case Expense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
			i, ok := index[t.Category]
			if !ok {
				i = len(s.ByCategory)
				index[t.Category] = i
				s.ByCategory = append(s.ByCategory, CategoryAmount{Name: t.Category, Amount: Sum()})
			}
			s.ByCategory[i].Amount = s.ByCategory[i].Amount.Add(t.Amount)
		}
	}
	slices.SortFunc(s.ByCategory, func(a, b CategoryAmount) int {
		return strings.Compare(a.Name, b.Name)
	})
	return s
}

// Split separates a bucket into incomes and expenses, each sorted by date.
// Entries sharing a date keep their insertion order.
func Split(txs []Transaction) (incomes, expenses []Transaction) {
	for _, t := range txs {
		switch t.Kind {
		case Income:
			incomes = append(incomes, t)
		case Expense:
			expenses = append(expenses, t)
		}
	}
	byDate := func(a, b Transaction) int {
		return a.Date.Compare(b.Date.Time)
	}
	slices.SortStableFunc(incomes, byDate)
	slices.SortStableFunc(expenses, byDate)
	return incomes, expenses
}
