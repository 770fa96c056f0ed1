package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *mockSessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSessionRepository) CleanExpiredSessions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type mockUnitRepository struct {
	mock.Mock
}

func (m *mockUnitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *mockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Unit), args.Error(1)
}

// memBookingStore is an in-memory BookingRepository. Reserve holds a single
// mutex across decide and insert, the same guarantee the postgres advisory
// lock gives per unit.
type memBookingStore struct {
	mu       sync.Mutex
	bookings []*entity.Booking

	// reserveErrs are returned, in order, by the next Reserve calls
	// before decide runs.
	reserveErrs []error
	reserves    int
}

var _ repository.BookingRepository = (*memBookingStore)(nil)

func (s *memBookingStore) seed(b *entity.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
}

func (s *memBookingStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memBookingStore) Reserve(ctx context.Context, unitID uuid.UUID, from time.Time, decide repository.ReserveFunc) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reserves++
	if len(s.reserveErrs) > 0 {
		err := s.reserveErrs[0]
		s.reserveErrs = s.reserveErrs[1:]
		return nil, err
	}

	var existing []*entity.Booking
	for _, b := range s.bookings {
		if b.UnitID == unitID && !b.CheckOut.Before(from) {
			existing = append(existing, b)
		}
	}

	booking, err := decide(existing)
	if err != nil {
		return nil, err
	}
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

func (s *memBookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (s *memBookingStore) FindUpcomingByUnit(ctx context.Context, unitID uuid.UUID, kind reservation.Kind, after time.Time) ([]*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Booking
	for _, b := range s.bookings {
		if b.UnitID == unitID && b.Kind == kind && b.CheckIn.After(after) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) })
	return out, nil
}

func (s *memBookingStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var mine []*entity.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			mine = append(mine, b)
		}
	}
	if offset >= len(mine) {
		return nil, nil
	}
	end := offset + limit
	if end > len(mine) {
		end = len(mine)
	}
	return mine[offset:end], nil
}

func (s *memBookingStore) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, b := range s.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *memBookingStore) ListSpans(ctx context.Context, unitID uuid.UUID) ([]reservation.Span, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var spans []reservation.Span
	for _, b := range s.bookings {
		if b.UnitID == unitID {
			spans = append(spans, b.Span())
		}
	}
	return spans, nil
}

func (s *memBookingStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
