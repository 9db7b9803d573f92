package core

import "errors"

// ValidationError reports rejected input. Message is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

var (
	ErrDateFormat        = &ValidationError{Message: "Date must be in YYYY-MM-DD format"}
	ErrInvalidDate       = &ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}
	ErrNonPositiveAmount = &ValidationError{Message: "Amount must be greater than 0"}
	ErrEmptyCategory     = &ValidationError{Message: "Category cannot be empty"}
	ErrCategoryTooLong   = &ValidationError{Message: "Category cannot exceed 20 characters"}
	ErrMonthOutOfRange   = &ValidationError{Message: "Month must be between 1 and 12"}
)

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
