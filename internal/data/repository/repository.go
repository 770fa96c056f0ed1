package repository

import (
	"context"
	"time"

	"rental-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Unit    UnitRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Unit:    NewUnitRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}

// WithUnitCache puts a redis read-through cache in front of unit lookups.
func (r *Repository) WithUnitCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *Repository {
	r.Unit = NewCachedUnitRepository(r.Unit, rdb, ttl, log)
	return r
}

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type scanner interface {
	Scan(dest ...any) error
}
