package wire

import (
	"net/http"

	"rental-booking/internal/adaptor"
	"rental-booking/internal/reservation"

	"github.com/go-chi/chi/v5"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	auth func(http.Handler) http.Handler,
) {
	for prefix, kind := range map[string]reservation.Kind{
		"/rooms":       reservation.KindRoom,
		"/experiences": reservation.KindExperience,
	} {
		// ==================== PUBLIC ROUTES ====================
		r.Get(prefix+"/{id}/bookings", bookingHandler.ListUpcoming(kind))
		r.Get(prefix+"/{id}/bookings/check", bookingHandler.CheckAvailability(kind))

		// ==================== PROTECTED ROUTES ====================
		r.With(auth).Post(prefix+"/{id}/bookings", bookingHandler.Create(kind))
	}

	r.Group(func(r chi.Router) {
		r.Use(auth)

		// GET /api/v1/users/me/bookings?page=1
		r.Get("/users/me/bookings", bookingHandler.GetUserBookings)

		// DELETE /api/v1/bookings/{id} - owner only
		r.Delete("/bookings/{id}", bookingHandler.Delete)
	})
}
