package response

import (
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/reservation"
)

// BookingResponse is the public booking view. Owner and audit fields stay internal.
type BookingResponse struct {
	ID             string  `json:"id"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	ExperienceTime *string `json:"experience_time,omitempty"`
	Guests         int     `json:"guests"`
}

// UserBookingResponse is what the owner sees in their own booking list.
type UserBookingResponse struct {
	BookingResponse
	UnitID    string           `json:"unit_id"`
	Kind      reservation.Kind `json:"kind"`
	CreatedAt time.Time        `json:"created_at"`
}

type AvailabilityResponse struct {
	OK bool `json:"ok"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:       b.ID.String(),
		CheckIn:  reservation.FormatDate(b.CheckIn),
		CheckOut: reservation.FormatDate(b.CheckOut),
		Guests:   b.Guests,
	}
	if b.ExperienceTime != nil {
		t := b.ExperienceTime.String()
		resp.ExperienceTime = &t
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToResponse(b))
	}
	return out
}

func UserBookingToResponse(b *entity.Booking) UserBookingResponse {
	return UserBookingResponse{
		BookingResponse: BookingToResponse(b),
		UnitID:          b.UnitID.String(),
		Kind:            b.Kind,
		CreatedAt:       b.CreatedAt,
	}
}
