package adaptor

import (
	"encoding/json"
	"net/http"

	"rental-booking/internal/dto/request"
	"rental-booking/internal/reservation"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /api/v1/{rooms|experiences}/{id}/bookings (protected).
// The route decides the kind; the body never does.
func (h *BookingHandler) Create(kind reservation.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			utils.ResponseUnauthorized(w, "Authentication required")
			return
		}

		unitID, ok := pathID(w, r, "id", "Unit not found")
		if !ok {
			return
		}

		var req request.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}

		booking, err := h.service.CreateBooking(r.Context(), userID, kind, unitID, &req)
		if err != nil {
			writeServiceError(w, h.log, err, "create booking")
			return
		}

		utils.ResponseCreated(w, "Booking created", booking)
	}
}

// ListUpcoming handles GET /api/v1/{rooms|experiences}/{id}/bookings
func (h *BookingHandler) ListUpcoming(kind reservation.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unitID, ok := pathID(w, r, "id", "Unit not found")
		if !ok {
			return
		}

		bookings, err := h.service.GetUpcomingBookings(r.Context(), kind, unitID)
		if err != nil {
			writeServiceError(w, h.log, err, "list bookings")
			return
		}

		utils.ResponseSuccess(w, "success", bookings)
	}
}

// CheckAvailability handles GET /api/v1/{rooms|experiences}/{id}/bookings/check?check_in=&check_out=
func (h *BookingHandler) CheckAvailability(kind reservation.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unitID, ok := pathID(w, r, "id", "Unit not found")
		if !ok {
			return
		}

		query := r.URL.Query()
		req := request.CheckAvailabilityRequest{
			CheckIn:  query.Get("check_in"),
			CheckOut: query.Get("check_out"),
		}

		result, err := h.service.CheckAvailability(r.Context(), kind, unitID, &req)
		if err != nil {
			writeServiceError(w, h.log, err, "check availability")
			return
		}

		utils.ResponseSuccess(w, "success", result)
	}
}

// GetUserBookings handles GET /api/v1/users/me/bookings?page= (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	bookings, err := h.service.GetUserBookings(r.Context(), userID, page)
	if err != nil {
		writeServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Delete handles DELETE /api/v1/bookings/{id} (protected, owner only)
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID, ok := pathID(w, r, "id", "Booking not found")
	if !ok {
		return
	}

	if err := h.service.DeleteBooking(r.Context(), userID, bookingID); err != nil {
		writeServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseNoContent(w)
}
