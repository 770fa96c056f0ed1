package usecase

import (
	"rental-booking/internal/data/repository"
	"rental-booking/internal/reservation"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Unit    UnitService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, clock reservation.Clock, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config.JWT, log),
		User:    NewUserService(repo.User, log),
		Unit:    NewUnitService(repo.Unit, repo.User, log),
		Booking: NewBookingService(repo, clock, config.App.PageSize, log),
	}
}

// validateInput runs the struct validator and converts failures into an InputError.
func validateInput(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &InputError{Fields: errs}
	}
	return nil
}
