package core

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the only accepted date text form.
const DateLayout = "2006-01-02"

// MaxCategoryLength bounds expense categories, counted in characters.
const MaxCategoryLength = 20

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateExpense checks an expense entry and returns its parsed date.
//
// Checks run in order: date pattern, amount, category, calendar validity.
// The first failure is returned.
func ValidateExpense(dateText string, amount Money, category string) (Date, error) {
	return validate(dateText, amount, &category)
}

// ValidateIncome checks an income entry. There is no category to check.
func ValidateIncome(dateText string, amount Money) (Date, error) {
	return validate(dateText, amount, nil)
}

func validate(dateText string, amount Money, category *string) (Date, error) {
	if !datePattern.MatchString(dateText) {
		return Date{}, ErrDateFormat
	}
	if err := amount.Validate(); err != nil {
		return Date{}, err
	}
	if category != nil {
		if err := ValidateCategory(*category); err != nil {
			return Date{}, err
		}
	}
	return ParseDate(dateText)
}

// ValidateCategory checks an expense category.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}
	return nil
}

// ParseDate parses YYYY-MM-DD into a calendar date. Days that do not exist,
// like 2024-02-30, are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}
