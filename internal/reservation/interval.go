package reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// MaxGuests caps a single booking's party size.
	MaxGuests = 1000
)

type Kind string

const (
	KindRoom       Kind = "room"
	KindExperience Kind = "experience"
)

func (k Kind) Valid() bool {
	return k == KindRoom || k == KindExperience
}

// ParseKind accepts the lower case kind names used on the wire and in storage.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", &FieldError{Field: "kind", Err: ErrInvalidKind}
	}
	return k, nil
}

// Interval is a proposed reservation of one unit. CheckIn and CheckOut are
// calendar dates held as midnight UTC.
type Interval struct {
	UnitID   uuid.UUID
	Kind     Kind
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// NewInterval builds an Interval from wire values. Only structural checks run
// here; the temporal rules belong to Validate.
func NewInterval(unitID uuid.UUID, kind Kind, checkIn, checkOut string, guests int) (Interval, error) {
	if !kind.Valid() {
		return Interval{}, &FieldError{Field: "kind", Err: ErrInvalidKind}
	}
	in, err := ParseDate(checkIn)
	if err != nil {
		return Interval{}, &FieldError{Field: "check_in", Err: err}
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return Interval{}, &FieldError{Field: "check_out", Err: err}
	}
	if guests < 1 || guests > MaxGuests {
		return Interval{}, &FieldError{Field: "guests", Err: ErrInvalidGuests}
	}
	return Interval{
		UnitID:   unitID,
		Kind:     kind,
		CheckIn:  in,
		CheckOut: out,
		Guests:   guests,
	}, nil
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s %s [%s, %s)", iv.Kind, iv.UnitID, FormatDate(iv.CheckIn), FormatDate(iv.CheckOut))
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeOfDay is minutes since midnight.
type TimeOfDay int

// ParseTimeOfDay parses an HH:MM time of day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, ErrMalformedTime
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Within reports whether t lies in the closed window [start, end].
func (t TimeOfDay) Within(start, end TimeOfDay) bool {
	return t >= start && t <= end
}
