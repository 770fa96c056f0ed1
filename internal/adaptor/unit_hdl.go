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

type UnitHandler struct {
	service usecase.UnitService
	log     *zap.Logger
}

func NewUnitHandler(service usecase.UnitService, log *zap.Logger) *UnitHandler {
	return &UnitHandler{
		service: service,
		log:     log.With(zap.String("handler", "unit")),
	}
}

// CreateRoom handles POST /api/v1/rooms (hosts only)
func (h *UnitHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", room)
}

// CreateExperience handles POST /api/v1/experiences (hosts only)
func (h *UnitHandler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	exp, err := h.service.CreateExperience(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create experience")
		return
	}

	utils.ResponseCreated(w, "Experience created", exp)
}

// Get handles GET /api/v1/rooms/{id} and GET /api/v1/experiences/{id}
func (h *UnitHandler) Get(kind reservation.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unitID, ok := pathID(w, r, "id", "Unit not found")
		if !ok {
			return
		}

		unit, err := h.service.GetUnit(r.Context(), kind, unitID)
		if err != nil {
			writeServiceError(w, h.log, err, "get "+string(kind))
			return
		}

		utils.ResponseSuccess(w, "success", unit)
	}
}
