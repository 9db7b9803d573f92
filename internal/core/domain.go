package core

import (
	"fmt"
	"time"
)

// IncomeCategory is the fixed category carried by every income entry.
const IncomeCategory = "Income"

const (
	Income Kind = iota + 1
	Expense
)

type (
	// Kind discriminates the two transaction variants.
	Kind int

	Date struct {
		time.Time
	}

	// Transaction is a dated monetary record. Kind decides the category
	// policy: incomes always carry IncomeCategory, expenses carry the
	// caller's category.
	Transaction struct {
		Kind     Kind
		Date     Date
		Amount   Money
		Category string
	}

	// MonthKey identifies a calendar month used to bucket transactions.
	MonthKey struct {
		Year  int
		Month int
	}
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// NewIncome builds an income entry. Inputs are expected to be validated.
func NewIncome(date Date, amount Money) Transaction {
	return Transaction{Kind: Income, Date: date, Amount: amount, Category: IncomeCategory}
}

// NewExpense builds an expense entry. Inputs are expected to be validated.
func NewExpense(date Date, amount Money, category string) Transaction {
	return Transaction{Kind: Expense, Date: date, Amount: amount, Category: category}
}

// MonthKey returns the bucket key of the transaction's date.
func (t Transaction) MonthKey() MonthKey {
	return MonthKey{Year: t.Date.Year(), Month: t.Date.Month()}
}

// NewMonthKey validates month and returns the key.
func NewMonthKey(year, month int) (MonthKey, error) {
	if month < 1 || month > 12 {
		return MonthKey{}, ErrMonthOutOfRange
	}
	return MonthKey{Year: year, Month: month}, nil
}

// Less orders keys by year, then month.
func (k MonthKey) Less(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Compare returns -1, 0 or +1, for use with slices.SortFunc.
func (k MonthKey) Compare(other MonthKey) int {
	switch {
	case k.Less(other):
		return -1
	case other.Less(k):
		return 1
	default:
		return 0
	}
}

// String renders the canonical YYYY-MM form.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}
