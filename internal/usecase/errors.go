package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrSlotTaken       = errors.New("slot unavailable")
	ErrUnitNotFound    = errors.New("unit not found")
	ErrKindMismatch    = errors.New("unit kind does not match the requested kind")
	ErrTimeOutOfWindow = errors.New("experience_time is outside the experience's hours")
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("forbidden")

	// ErrStorageBusy is returned when the store keeps aborting the reserve
	// transaction. The request itself was valid.
	ErrStorageBusy = errors.New("storage busy, try again")

	ErrUserNotFound       = errors.New("user not found")
	ErrAccountExists      = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrNotHost            = errors.New("only hosts can create listings")
	ErrInvalidWindow      = errors.New("start must be before end")
)

// InputError carries per-field messages from request struct validation.
type InputError struct {
	Fields map[string]string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}
