package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrOverlap is raised by the bookings_no_overlap exclusion constraint.
	ErrOverlap = errors.New("booking overlaps an existing booking")

	// ErrTxConflict marks a transaction aborted by serialization failure or
	// deadlock. Retrying the whole transaction may succeed.
	ErrTxConflict = errors.New("transaction conflict")

	ErrDuplicate = errors.New("duplicate record")
)

const (
	pgUniqueViolation      = "23505"
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// mapPgError translates postgres error codes the services react to into
// package sentinels, keeping the original error in the chain.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgExclusionViolation:
		return fmt.Errorf("%w: %w", ErrOverlap, err)
	case pgSerializationFailure, pgDeadlockDetected:
		return fmt.Errorf("%w: %w", ErrTxConflict, err)
	case pgUniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	default:
		return err
	}
}
