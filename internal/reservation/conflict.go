package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Span is the part of a stored booking the conflict rule looks at.
type Span struct {
	ID       uuid.UUID
	UnitID   uuid.UUID
	Kind     Kind
	CheckIn  time.Time
	CheckOut time.Time
}

// Overlaps is the closed-endpoint test a_in <= b_out && a_out >= b_in.
// A check-in on another booking's check-out day counts as an overlap, so
// same-day turnover is rejected.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !aOut.Before(bIn)
}

// FindConflict returns the first span on the same unit and kind that overlaps
// [checkIn, checkOut].
func FindConflict(existing []Span, unitID uuid.UUID, kind Kind, checkIn, checkOut time.Time) (Span, bool) {
	for _, s := range existing {
		if s.UnitID != unitID || s.Kind != kind {
			continue
		}
		if Overlaps(checkIn, checkOut, s.CheckIn, s.CheckOut) {
			return s, true
		}
	}
	return Span{}, false
}

// SpanLister loads the stored bookings of one unit.
type SpanLister interface {
	ListSpans(ctx context.Context, unitID uuid.UUID) ([]Span, error)
}

// ConflictChecker answers overlap questions against stored bookings. It does
// not lock anything; the create path does its check inside the storage
// transaction instead.
type ConflictChecker struct {
	lister SpanLister
}

func NewConflictChecker(lister SpanLister) *ConflictChecker {
	return &ConflictChecker{lister: lister}
}

func (c *ConflictChecker) HasConflict(ctx context.Context, unitID uuid.UUID, kind Kind, checkIn, checkOut time.Time) (bool, error) {
	spans, err := c.lister.ListSpans(ctx, unitID)
	if err != nil {
		return false, err
	}
	_, found := FindConflict(spans, unitID, kind, checkIn, checkOut)
	return found, nil
}
