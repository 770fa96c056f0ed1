package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/reservation"
	"rental-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReserveFunc receives the unit's stored bookings that end on or after the
// new check-in and returns the booking to insert, or an error to abort
// without writing. Bookings ending earlier cannot overlap it.
type ReserveFunc func(existing []*entity.Booking) (*entity.Booking, error)

type BookingRepository interface {
	// Reserve serializes writers per unit: decide runs while the unit is
	// locked, and its result is inserted in the same transaction.
	Reserve(ctx context.Context, unitID uuid.UUID, from time.Time, decide ReserveFunc) (*entity.Booking, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindUpcomingByUnit(ctx context.Context, unitID uuid.UUID, kind reservation.Kind, after time.Time) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	ListSpans(ctx context.Context, unitID uuid.UUID) ([]reservation.Span, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, unit_id, kind, user_id, check_in, check_out,
	to_char(experience_time, 'HH24:MI'), guests, created_at, updated_at`

func (r *bookingRepository) Reserve(ctx context.Context, unitID uuid.UUID, from time.Time, decide ReserveFunc) (*entity.Booking, error) {
	var created *entity.Booking

	err := database.WithTx(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		// Taken before the read so the snapshot includes every committed
		// booking of concurrent writers on this unit.
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, unitID.String()); err != nil {
			return fmt.Errorf("lock unit %s: %w", unitID, err)
		}

		existing, err := queryBookings(ctx, tx,
			`SELECT `+bookingColumns+` FROM bookings WHERE unit_id = $1 AND check_out >= $2 ORDER BY check_in`, unitID, from)
		if err != nil {
			return fmt.Errorf("load bookings of unit %s: %w", unitID, err)
		}

		booking, err := decide(existing)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO bookings (id, unit_id, kind, user_id, check_in, check_out, experience_time, guests, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7::time, $8, $9, $10)
		`,
			booking.ID,
			booking.UnitID,
			booking.Kind,
			booking.UserID,
			booking.CheckIn,
			booking.CheckOut,
			formatTimeOfDay(booking.ExperienceTime),
			booking.Guests,
			booking.CreatedAt,
			booking.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		created = booking
		return nil
	})

	if err != nil {
		err = mapPgError(err)
		if errors.Is(err, ErrOverlap) || errors.Is(err, ErrTxConflict) {
			r.log.Warn("Reserve rejected by database",
				zap.Error(err),
				zap.String("unit_id", unitID.String()),
			)
		}
		return nil, err
	}

	return created, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return booking, nil
}

// FindUpcomingByUnit lists bookings whose check-in is strictly after the
// given date, earliest first.
func (r *bookingRepository) FindUpcomingByUnit(ctx context.Context, unitID uuid.UUID, kind reservation.Kind, after time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE unit_id = $1 AND kind = $2 AND check_in > $3
		ORDER BY check_in, created_at
	`

	bookings, err := queryBookings(ctx, r.db, query, unitID, kind, after)
	if err != nil {
		r.log.Error("Failed to list upcoming bookings",
			zap.Error(err),
			zap.String("unit_id", unitID.String()),
		)
		return nil, fmt.Errorf("find upcoming bookings of unit %s: %w", unitID, err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	bookings, err := queryBookings(ctx, r.db, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user %s: %w", userID, err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user %s: %w", userID, err)
	}
	return count, nil
}

// ListSpans implements reservation.SpanLister.
func (r *bookingRepository) ListSpans(ctx context.Context, unitID uuid.UUID) ([]reservation.Span, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, unit_id, kind, check_in, check_out
		FROM bookings
		WHERE unit_id = $1
	`, unitID)
	if err != nil {
		return nil, fmt.Errorf("list spans of unit %s: %w", unitID, err)
	}
	defer rows.Close()

	var spans []reservation.Span
	for rows.Next() {
		var s reservation.Span
		if err := rows.Scan(&s.ID, &s.UnitID, &s.Kind, &s.CheckIn, &s.CheckOut); err != nil {
			return nil, fmt.Errorf("scan span: %w", err)
		}
		spans = append(spans, s)
	}

	return spans, rows.Err()
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	return nil
}

func queryBookings(ctx context.Context, q querier, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func scanBooking(row scanner) (*entity.Booking, error) {
	var (
		booking entity.Booking
		kind    string
		expTime *string
	)
	err := row.Scan(
		&booking.ID,
		&booking.UnitID,
		&kind,
		&booking.UserID,
		&booking.CheckIn,
		&booking.CheckOut,
		&expTime,
		&booking.Guests,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if booking.Kind, err = reservation.ParseKind(kind); err != nil {
		return nil, fmt.Errorf("booking %s: %w", booking.ID, err)
	}
	if booking.ExperienceTime, err = parseTimeOfDay(expTime); err != nil {
		return nil, fmt.Errorf("booking %s experience_time: %w", booking.ID, err)
	}

	return &booking, nil
}
