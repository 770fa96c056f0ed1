package response

import (
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/reservation"
)

type UnitResponse struct {
	ID        string           `json:"id"`
	Kind      reservation.Kind `json:"kind"`
	HostID    string           `json:"host_id"`
	Name      string           `json:"name"`
	Price     int              `json:"price"`
	Start     *string          `json:"start,omitempty"`
	End       *string          `json:"end,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func UnitToResponse(u *entity.Unit) UnitResponse {
	resp := UnitResponse{
		ID:        u.ID.String(),
		Kind:      u.Kind,
		HostID:    u.HostID.String(),
		Name:      u.Name,
		Price:     u.Price,
		CreatedAt: u.CreatedAt,
	}
	if u.StartTime != nil {
		s := u.StartTime.String()
		resp.Start = &s
	}
	if u.EndTime != nil {
		e := u.EndTime.String()
		resp.End = &e
	}
	return resp
}
