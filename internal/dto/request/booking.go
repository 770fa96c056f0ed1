package request

// CreateBookingRequest is the body of a room or experience booking.
// Pointer fields tell a missing value apart from a zero one.
type CreateBookingRequest struct {
	CheckIn  *string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut *string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests   *int    `json:"guests" validate:"required,min=1,max=1000"`

	// Experience bookings only; ignored for rooms.
	ExperienceTime *string `json:"experience_time,omitempty" validate:"omitempty,datetime=15:04"`
}

// CheckAvailabilityRequest is read from the query string.
type CheckAvailabilityRequest struct {
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}
