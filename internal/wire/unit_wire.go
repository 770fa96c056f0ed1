package wire

import (
	"net/http"

	"rental-booking/internal/adaptor"
	"rental-booking/internal/reservation"

	"github.com/go-chi/chi/v5"
)

func wireUnit(
	r chi.Router,
	unitHandler *adaptor.UnitHandler,
	auth func(http.Handler) http.Handler,
) {
	// GET /api/v1/rooms/{id}, GET /api/v1/experiences/{id}
	r.Get("/rooms/{id}", unitHandler.Get(reservation.KindRoom))
	r.Get("/experiences/{id}", unitHandler.Get(reservation.KindExperience))

	// Hosts only; the service checks the host flag
	r.With(auth).Post("/rooms", unitHandler.CreateRoom)
	r.With(auth).Post("/experiences", unitHandler.CreateExperience)
}
