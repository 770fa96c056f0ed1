package adaptor

import (
	"errors"
	"net/http"

	"rental-booking/internal/reservation"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps service errors onto the response envelope. Anything
// unrecognised is logged and answered with a bare 500.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		inputErr *usecase.InputError
		vErr     *reservation.ValidationError
		fErr     *reservation.FieldError
	)

	switch {
	case errors.As(err, &inputErr):
		log.Debug(operation+" validation failed", zap.Any("errors", inputErr.Fields))
		utils.ResponseBadRequest(w, "Validation failed", inputErr.Fields)

	case errors.As(err, &vErr):
		log.Debug(operation+" rejected", zap.String("reason", vErr.Reason()), zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{vErr.Field: vErr.Err.Error()})

	case errors.As(err, &fErr):
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{fErr.Field: fErr.Err.Error()})

	case errors.Is(err, usecase.ErrTimeOutOfWindow):
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"experience_time": usecase.ErrTimeOutOfWindow.Error()})

	case errors.Is(err, usecase.ErrSlotTaken):
		utils.ResponseConflict(w, "Slot unavailable", nil)

	case errors.Is(err, usecase.ErrAccountExists):
		utils.ResponseConflict(w, usecase.ErrAccountExists.Error(), nil)

	case errors.Is(err, usecase.ErrUnitNotFound),
		errors.Is(err, usecase.ErrKindMismatch):
		utils.ResponseNotFound(w, "Unit not found")

	case errors.Is(err, usecase.ErrBookingNotFound):
		utils.ResponseNotFound(w, "Booking not found")

	case errors.Is(err, usecase.ErrUserNotFound):
		utils.ResponseNotFound(w, "User not found")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, usecase.ErrInvalidCredentials.Error())

	case errors.Is(err, usecase.ErrNotHost):
		utils.ResponseForbidden(w, usecase.ErrNotHost.Error())

	case errors.Is(err, usecase.ErrAccountInactive):
		utils.ResponseForbidden(w, usecase.ErrAccountInactive.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, "You do not have access to this resource")

	case errors.Is(err, usecase.ErrStorageBusy):
		log.Warn(operation+" failed - storage busy", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Service busy, please retry")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
