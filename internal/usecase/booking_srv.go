package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/internal/reservation"
	"rental-booking/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking validates the request, then checks for conflicts and
	// inserts in one atomic step against the store.
	CreateBooking(ctx context.Context, requester uuid.UUID, kind reservation.Kind, unitID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	GetUpcomingBookings(ctx context.Context, kind reservation.Kind, unitID uuid.UUID) ([]response.BookingResponse, error)
	CheckAvailability(ctx context.Context, kind reservation.Kind, unitID uuid.UUID, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, page int) (*response.PaginatedResponse[response.UserBookingResponse], error)
	DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingService struct {
	unitRepo    repository.UnitRepository
	bookingRepo repository.BookingRepository
	validator   *reservation.Validator
	checker     *reservation.ConflictChecker
	clock       reservation.Clock
	pageSize    int
	log         *zap.Logger
}

func NewBookingService(repo *repository.Repository, clock reservation.Clock, pageSize int, log *zap.Logger) BookingService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &bookingService{
		unitRepo:    repo.Unit,
		bookingRepo: repo.Booking,
		validator:   reservation.NewValidator(clock),
		checker:     reservation.NewConflictChecker(repo.Booking),
		clock:       clock,
		pageSize:    pageSize,
		log:         log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(
	ctx context.Context,
	requester uuid.UUID,
	kind reservation.Kind,
	unitID uuid.UUID,
	req *request.CreateBookingRequest,
) (*response.BookingResponse, error) {
	if err := validateInput(req); err != nil {
		return nil, s.reject(err, unitID)
	}

	unit, err := s.findUnit(ctx, kind, unitID)
	if err != nil {
		return nil, s.reject(err, unitID)
	}

	iv, err := reservation.NewInterval(unit.ID, unit.Kind, *req.CheckIn, *req.CheckOut, *req.Guests)
	if err != nil {
		return nil, s.reject(err, unitID)
	}

	validated, err := s.validator.Validate(iv)
	if err != nil {
		return nil, s.reject(err, unitID)
	}

	var experienceTime *reservation.TimeOfDay
	if unit.Kind == reservation.KindExperience {
		experienceTime, err = s.experienceTime(unit, req.ExperienceTime)
		if err != nil {
			return nil, s.reject(err, unitID)
		}
	}

	booking := newBooking(validated, requester, experienceTime)
	created, err := s.reserve(ctx, booking)
	if err != nil {
		return nil, s.reject(err, unitID)
	}

	metrics.IncBookingCreated(string(created.Kind))
	s.log.Info("Booking created",
		zap.String("booking_id", created.ID.String()),
		zap.String("unit_id", created.UnitID.String()),
		zap.String("kind", string(created.Kind)),
		zap.Stringer("interval", validated.Interval))

	resp := response.BookingToResponse(created)
	return &resp, nil
}

// reserve runs the locked check-and-insert, retrying once when the store
// aborts the transaction.
func (s *bookingService) reserve(ctx context.Context, booking *entity.Booking) (*entity.Booking, error) {
	decide := func(existing []*entity.Booking) (*entity.Booking, error) {
		span, found := reservation.FindConflict(entity.Spans(existing), booking.UnitID, booking.Kind, booking.CheckIn, booking.CheckOut)
		if found {
			return nil, fmt.Errorf("%w: overlaps booking %s", ErrSlotTaken, span.ID)
		}
		return booking, nil
	}

	created, err := s.bookingRepo.Reserve(ctx, booking.UnitID, booking.CheckIn, decide)
	if errors.Is(err, repository.ErrTxConflict) {
		metrics.IncReserveRetry()
		s.log.Warn("Reserve aborted by store, retrying", zap.Error(err), zap.String("unit_id", booking.UnitID.String()))
		created, err = s.bookingRepo.Reserve(ctx, booking.UnitID, booking.CheckIn, decide)
	}

	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, repository.ErrOverlap):
		return nil, fmt.Errorf("%w: %w", ErrSlotTaken, err)
	case errors.Is(err, repository.ErrTxConflict):
		return nil, fmt.Errorf("%w: %w", ErrStorageBusy, err)
	default:
		return nil, err
	}
}

// reject records why a booking attempt failed and passes the error through.
func (s *bookingService) reject(err error, unitID uuid.UUID) error {
	reason := rejectionReason(err)
	if reason == "" {
		s.log.Error("Booking failed", zap.Error(err), zap.String("unit_id", unitID.String()))
		return err
	}

	metrics.IncBookingRejected(reason)
	s.log.Warn("Booking rejected",
		zap.String("reason", reason),
		zap.String("unit_id", unitID.String()),
		zap.Error(err))
	return err
}

func rejectionReason(err error) string {
	var (
		inputErr *InputError
		vErr     *reservation.ValidationError
		fErr     *reservation.FieldError
	)
	switch {
	case errors.As(err, &inputErr):
		return metrics.ReasonInvalid
	case errors.As(err, &vErr):
		return vErr.Reason()
	case errors.As(err, &fErr):
		return metrics.ReasonInvalid
	case errors.Is(err, ErrSlotTaken):
		return metrics.ReasonSlotTaken
	case errors.Is(err, ErrTimeOutOfWindow):
		return metrics.ReasonTimeOutOfWindow
	case errors.Is(err, ErrUnitNotFound):
		return metrics.ReasonUnitNotFound
	case errors.Is(err, ErrKindMismatch):
		return metrics.ReasonKindMismatch
	case errors.Is(err, ErrStorageBusy):
		return metrics.ReasonStorageBusy
	default:
		return ""
	}
}

func (s *bookingService) experienceTime(unit *entity.Unit, raw *string) (*reservation.TimeOfDay, error) {
	if raw == nil {
		return nil, &reservation.FieldError{Field: "experience_time", Err: reservation.ErrRequired}
	}
	t, err := reservation.ParseTimeOfDay(*raw)
	if err != nil {
		return nil, &reservation.FieldError{Field: "experience_time", Err: err}
	}
	if !unit.AcceptsTime(t) {
		return nil, fmt.Errorf("%s not in %s-%s: %w", t, unit.StartTime, unit.EndTime, ErrTimeOutOfWindow)
	}
	return &t, nil
}

func (s *bookingService) findUnit(ctx context.Context, kind reservation.Kind, unitID uuid.UUID) (*entity.Unit, error) {
	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("find unit %s: %w", unitID, err)
	}
	if unit == nil {
		return nil, fmt.Errorf("%s %s: %w", kind, unitID, ErrUnitNotFound)
	}
	if unit.Kind != kind {
		return nil, fmt.Errorf("unit %s is a %s: %w", unitID, unit.Kind, ErrKindMismatch)
	}
	return unit, nil
}

// GetUpcomingBookings lists bookings checking in after today.
func (s *bookingService) GetUpcomingBookings(ctx context.Context, kind reservation.Kind, unitID uuid.UUID) ([]response.BookingResponse, error) {
	if _, err := s.findUnit(ctx, kind, unitID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindUpcomingByUnit(ctx, unitID, kind, s.validator.Today())
	if err != nil {
		return nil, fmt.Errorf("get upcoming bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

// CheckAvailability answers without locking; a later CreateBooking may
// still lose the slot.
func (s *bookingService) CheckAvailability(ctx context.Context, kind reservation.Kind, unitID uuid.UUID, req *request.CheckAvailabilityRequest) (*response.AvailabilityResponse, error) {
	if err := validateInput(req); err != nil {
		return nil, err
	}

	if _, err := s.findUnit(ctx, kind, unitID); err != nil {
		return nil, err
	}

	iv, err := reservation.NewInterval(unitID, kind, req.CheckIn, req.CheckOut, 1)
	if err != nil {
		return nil, err
	}
	validated, err := s.validator.Validate(iv)
	if err != nil {
		return nil, err
	}

	taken, err := s.checker.HasConflict(ctx, unitID, kind, validated.CheckIn, validated.CheckOut)
	if err != nil {
		s.log.Error("Failed to check availability", zap.Error(err), zap.String("unit_id", unitID.String()))
		return nil, fmt.Errorf("check availability: %w", err)
	}

	return &response.AvailabilityResponse{OK: !taken}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, page int) (*response.PaginatedResponse[response.UserBookingResponse], error) {
	req := request.PaginatedRequest{Page: page, PerPage: s.pageSize}
	if req.Page < 1 {
		req.Page = 1
	}

	bookings, err := s.bookingRepo.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.bookingRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	data := make([]response.UserBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		data = append(data, response.UserBookingToResponse(b))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

// DeleteBooking lets the owner cancel a booking.
func (s *bookingService) DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
	}
	if booking.UserID != userID {
		s.log.Warn("Attempt to delete another user's booking",
			zap.String("booking_id", bookingID.String()),
			zap.String("user_id", userID.String()))
		return ErrForbidden
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("booking %s: %w", bookingID, ErrBookingNotFound)
		}
		return fmt.Errorf("delete booking: %w", err)
	}

	s.log.Info("Booking deleted",
		zap.String("booking_id", bookingID.String()),
		zap.String("user_id", userID.String()))
	return nil
}

func newBooking(v reservation.ValidatedInterval, requester uuid.UUID, experienceTime *reservation.TimeOfDay) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UnitID:         v.UnitID,
		Kind:           v.Kind,
		UserID:         requester,
		CheckIn:        v.CheckIn,
		CheckOut:       v.CheckOut,
		ExperienceTime: experienceTime,
		Guests:         v.Guests,
	}
}
