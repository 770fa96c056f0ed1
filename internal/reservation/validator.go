package reservation

import "time"

// ValidatedInterval is an Interval that passed Validate. Only Validate creates one.
type ValidatedInterval struct {
	Interval
}

// Validate applies the temporal rules in order and stops at the first failure:
// check_in not before today, check_out not before today, check_out strictly
// after check_in. today must be a calendar date as returned by Today.
func Validate(iv Interval, today time.Time) (ValidatedInterval, error) {
	today = DateOf(today)
	if iv.CheckIn.Before(today) {
		return ValidatedInterval{}, &ValidationError{Field: "check_in", Err: ErrPastDate}
	}
	// Redundant once ordering holds, but each endpoint is rejected on its own.
	if iv.CheckOut.Before(today) {
		return ValidatedInterval{}, &ValidationError{Field: "check_out", Err: ErrPastDate}
	}
	if !iv.CheckOut.After(iv.CheckIn) {
		return ValidatedInterval{}, &ValidationError{Field: "check_out", Err: ErrInvertedRange}
	}
	return ValidatedInterval{Interval: iv}, nil
}

// Validator binds Validate to a clock.
type Validator struct {
	clock Clock
}

func NewValidator(clock Clock) *Validator {
	return &Validator{clock: clock}
}

func (v *Validator) Validate(iv Interval) (ValidatedInterval, error) {
	return Validate(iv, Today(v.clock))
}

func (v *Validator) Today() time.Time {
	return Today(v.clock)
}
