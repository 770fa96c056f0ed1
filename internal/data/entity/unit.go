package entity

import (
	"rental-booking/internal/reservation"

	"github.com/google/uuid"
)

// Unit is a bookable listing: a room or an experience.
type Unit struct {
	BaseNoDelete
	Kind   reservation.Kind `db:"kind"`
	HostID uuid.UUID        `db:"host_id"`
	Name   string           `db:"name"`
	Price  int              `db:"price"`

	// Experience window; nil for rooms.
	StartTime *reservation.TimeOfDay `db:"start_time"`
	EndTime   *reservation.TimeOfDay `db:"end_time"`
}

// AcceptsTime reports whether t lies inside the experience window.
// Units without a window accept nothing.
func (u *Unit) AcceptsTime(t reservation.TimeOfDay) bool {
	if u.StartTime == nil || u.EndTime == nil {
		return false
	}
	return t.Within(*u.StartTime, *u.EndTime)
}
