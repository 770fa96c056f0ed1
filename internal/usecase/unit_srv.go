package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/internal/reservation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnitService is the listing catalog: just enough of it to create units and
// to resolve them for bookings.
type UnitService interface {
	CreateRoom(ctx context.Context, hostID uuid.UUID, req *request.CreateRoomRequest) (*response.UnitResponse, error)
	CreateExperience(ctx context.Context, hostID uuid.UUID, req *request.CreateExperienceRequest) (*response.UnitResponse, error)
	GetUnit(ctx context.Context, kind reservation.Kind, unitID uuid.UUID) (*response.UnitResponse, error)
}

type unitService struct {
	unitRepo repository.UnitRepository
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUnitService(unitRepo repository.UnitRepository, userRepo repository.UserRepository, log *zap.Logger) UnitService {
	return &unitService{
		unitRepo: unitRepo,
		userRepo: userRepo,
		log:      log.With(zap.String("service", "unit")),
	}
}

func (s *unitService) CreateRoom(ctx context.Context, hostID uuid.UUID, req *request.CreateRoomRequest) (*response.UnitResponse, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	unit := newUnit(reservation.KindRoom, hostID, req.Name, *req.Price)
	return s.create(ctx, unit)
}

func (s *unitService) CreateExperience(ctx context.Context, hostID uuid.UUID, req *request.CreateExperienceRequest) (*response.UnitResponse, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	start, err := reservation.ParseTimeOfDay(*req.Start)
	if err != nil {
		return nil, &reservation.FieldError{Field: "start", Err: err}
	}
	end, err := reservation.ParseTimeOfDay(*req.End)
	if err != nil {
		return nil, &reservation.FieldError{Field: "end", Err: err}
	}
	if start >= end {
		return nil, &reservation.FieldError{Field: "end", Err: ErrInvalidWindow}
	}

	unit := newUnit(reservation.KindExperience, hostID, req.Name, *req.Price)
	unit.StartTime = &start
	unit.EndTime = &end
	return s.create(ctx, unit)
}

// GetUnit treats a unit of the other kind as missing.
func (s *unitService) GetUnit(ctx context.Context, kind reservation.Kind, unitID uuid.UUID) (*response.UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		s.log.Error("Failed to find unit", zap.Error(err), zap.String("unit_id", unitID.String()))
		return nil, fmt.Errorf("get unit: %w", err)
	}
	if unit == nil || unit.Kind != kind {
		return nil, fmt.Errorf("%s %s: %w", kind, unitID, ErrUnitNotFound)
	}

	resp := response.UnitToResponse(unit)
	return &resp, nil
}

func (s *unitService) create(ctx context.Context, unit *entity.Unit) (*response.UnitResponse, error) {
	host, err := s.userRepo.FindByID(ctx, unit.HostID)
	if err != nil {
		return nil, fmt.Errorf("find host: %w", err)
	}
	if host == nil || !host.IsHost {
		s.log.Warn("Non-host tried to create a listing", zap.String("user_id", unit.HostID.String()))
		return nil, ErrNotHost
	}

	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("create %s: %w", unit.Kind, err)
	}

	s.log.Info("Unit created",
		zap.String("unit_id", unit.ID.String()),
		zap.String("kind", string(unit.Kind)),
		zap.String("host_id", unit.HostID.String()))

	resp := response.UnitToResponse(unit)
	return &resp, nil
}

func newUnit(kind reservation.Kind, hostID uuid.UUID, name string, price int) *entity.Unit {
	now := time.Now()
	return &entity.Unit{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Kind:   kind,
		HostID: hostID,
		Name:   name,
		Price:  price,
	}
}
