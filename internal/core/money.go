// Package core provides money parsing and handling utilities.
//
// Amounts are exact decimals. The text form keeps the scale an amount was
// entered with, so "100.50" is displayed as "100.50" and not "100.5".
package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when amount text is not a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

type Money struct {
	Value decimal.Decimal
}

// ParseAmount converts decimal text to Money without rounding.
//
// Signs are accepted: rejecting non-positive amounts is the job of
// validation, which reports it with its own message.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34
//	ParseAmount("100.50") -> 100.50 (scale kept)
//	ParseAmount("-5") -> -5
//	ParseAmount("12,34") -> ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.ContainsAny(s, "eE") {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return Money{Value: d}, nil
}

// MustParseAmount is ParseAmount for literals known to be valid.
func MustParseAmount(s string) Money {
	m, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMoney returns an integral amount.
func NewMoney(units int64) Money {
	return Money{Value: decimal.NewFromInt(units)}
}

func (m Money) Validate() error {
	if !m.Value.IsPositive() {
		return ErrNonPositiveAmount
	}
	return nil
}

// Add returns m+o. The result keeps the larger scale of the two operands.
func (m Money) Add(o Money) Money {
	return Money{Value: m.Value.Add(o.Value)}
}

func (m Money) IsPositive() bool {
	return m.Value.IsPositive()
}

func (m Money) Equal(o Money) bool {
	return m.Value.Equal(o.Value)
}

// String renders the amount with the scale it carries.
func (m Money) String() string {
	if exp := m.Value.Exponent(); exp < 0 {
		return m.Value.StringFixed(-exp)
	}
	return m.Value.String()
}

// Sum adds amounts starting from zero.
func Sum(amounts ...Money) Money {
	total := Money{Value: decimal.Zero}
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
