package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPgError(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{code: "23P01", want: ErrOverlap},
		{code: "40001", want: ErrTxConflict},
		{code: "40P01", want: ErrTxConflict},
		{code: "23505", want: ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			pgErr := &pgconn.PgError{Code: tt.code}
			err := mapPgError(fmt.Errorf("commit tx: %w", pgErr))
			assert.ErrorIs(t, err, tt.want)

			var got *pgconn.PgError
			assert.ErrorAs(t, err, &got)
		})
	}

	other := &pgconn.PgError{Code: "42P01"}
	assert.Same(t, error(other), mapPgError(other))

	plain := errors.New("connection reset")
	assert.Equal(t, plain, mapPgError(plain))
}
