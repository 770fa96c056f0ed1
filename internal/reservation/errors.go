package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrPastDate      = errors.New("can't book in the past")
	ErrInvertedRange = errors.New("check_out must be after check_in")

	ErrRequired      = errors.New("this field is required")
	ErrMalformedDate = errors.New("must be a date in YYYY-MM-DD format")
	ErrMalformedTime = errors.New("must be a time in HH:MM format")
	ErrInvalidGuests = errors.New("must be between 1 and 1000 guests")
	ErrInvalidKind   = errors.New("must be room or experience")
)

// FieldError reports a structural problem found while building an Interval.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ValidationError reports a temporal rule broken by an otherwise well formed Interval.
// Err is ErrPastDate or ErrInvertedRange.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Reason is a stable, machine readable name for the rule that failed.
func (e *ValidationError) Reason() string {
	switch {
	case errors.Is(e.Err, ErrPastDate):
		return "past_date"
	case errors.Is(e.Err, ErrInvertedRange):
		return "inverted_range"
	default:
		return "invalid"
	}
}
