package entity

import (
	"time"

	"rental-booking/internal/reservation"

	"github.com/google/uuid"
)

type Booking struct {
	BaseNoDelete
	UnitID         uuid.UUID              `db:"unit_id"`
	Kind           reservation.Kind       `db:"kind"`
	UserID         uuid.UUID              `db:"user_id"`
	CheckIn        time.Time              `db:"check_in"`
	CheckOut       time.Time              `db:"check_out"`
	ExperienceTime *reservation.TimeOfDay `db:"experience_time"`
	Guests         int                    `db:"guests"`
}

func (b *Booking) Span() reservation.Span {
	return reservation.Span{
		ID:       b.ID,
		UnitID:   b.UnitID,
		Kind:     b.Kind,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
	}
}

func Spans(bookings []*Booking) []reservation.Span {
	spans := make([]reservation.Span, len(bookings))
	for i, b := range bookings {
		spans[i] = b.Span()
	}
	return spans
}
