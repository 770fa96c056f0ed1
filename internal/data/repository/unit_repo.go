package repository

import (
	"context"
	"errors"
	"fmt"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/reservation"
	"rental-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UnitRepository is the listing catalog as seen by the booking flow.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)
}

type unitRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUnitRepository(db database.PgxIface, log *zap.Logger) UnitRepository {
	return &unitRepository{
		db:  db,
		log: log.With(zap.String("repository", "unit")),
	}
}

func (r *unitRepository) Create(ctx context.Context, unit *entity.Unit) error {
	query := `
		INSERT INTO units (id, kind, host_id, name, price, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		unit.ID,
		unit.Kind,
		unit.HostID,
		unit.Name,
		unit.Price,
		formatTimeOfDay(unit.StartTime),
		formatTimeOfDay(unit.EndTime),
		unit.CreatedAt,
		unit.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create unit",
			zap.Error(err),
			zap.String("kind", string(unit.Kind)),
			zap.String("host_id", unit.HostID.String()),
		)
		return fmt.Errorf("create unit %s: %w", unit.Name, err)
	}

	return nil
}

func (r *unitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	query := `
		SELECT id, kind, host_id, name, price,
		       to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
		       created_at, updated_at
		FROM units
		WHERE id = $1
	`

	var (
		unit       entity.Unit
		kind       string
		start, end *string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&unit.ID,
		&kind,
		&unit.HostID,
		&unit.Name,
		&unit.Price,
		&start,
		&end,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find unit by ID",
			zap.Error(err),
			zap.String("unit_id", id.String()),
		)
		return nil, fmt.Errorf("find unit by ID %s: %w", id, err)
	}

	if unit.Kind, err = reservation.ParseKind(kind); err != nil {
		return nil, fmt.Errorf("unit %s: %w", id, err)
	}
	if unit.StartTime, err = parseTimeOfDay(start); err != nil {
		return nil, fmt.Errorf("unit %s start_time: %w", id, err)
	}
	if unit.EndTime, err = parseTimeOfDay(end); err != nil {
		return nil, fmt.Errorf("unit %s end_time: %w", id, err)
	}

	return &unit, nil
}

func formatTimeOfDay(t *reservation.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func parseTimeOfDay(s *string) (*reservation.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := reservation.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
