package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskerhq/tasker-api/internal/store"
)

func TestMapErrorNil(t *testing.T) {
	assert.NoError(t, MapError(nil, "board", "get"))
}

func TestMapErrorNoRows(t *testing.T) {
	err := MapError(pgx.ErrNoRows, "board", "get")

	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Contains(t, err.Error(), "board")
}

func TestMapErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_board_list_position"}

	err := MapError(pgErr, "list", "create")

	assert.True(t, errors.Is(err, store.ErrDuplicate))
	assert.Contains(t, err.Error(), "uq_board_list_position")
}

func TestMapErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "cards_list_id_fkey"}

	err := MapError(pgErr, "card", "create")

	assert.True(t, errors.Is(err, store.ErrInvalidReference))
}

func TestMapErrorCheckAndNotNullViolations(t *testing.T) {
	for _, code := range []string{"23514", "23502"} {
		pgErr := &pgconn.PgError{Code: code, ColumnName: "position"}

		err := MapError(pgErr, "card", "update")
		assert.True(t, errors.Is(err, store.ErrInvalidReference), "code %s", code)
	}
}

func TestMapErrorWrappedPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	wrapped := fmt.Errorf("insert board: %w", pgErr)

	assert.True(t, errors.Is(MapError(wrapped, "board", "create"), store.ErrDuplicate))
}

func TestMapErrorContextCancellationPassesThrough(t *testing.T) {
	assert.Equal(t, context.Canceled, MapError(context.Canceled, "board", "get"))
	assert.Equal(t, context.DeadlineExceeded, MapError(context.DeadlineExceeded, "board", "get"))
}

func TestMapErrorUnexpectedBecomesStorageError(t *testing.T) {
	driverErr := errors.New("connection refused")

	err := MapError(driverErr, "board", "list")

	var storageErr *store.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "board", storageErr.Entity)
	assert.Equal(t, "list", storageErr.Operation)
	assert.True(t, errors.Is(err, driverErr))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}

func TestCheckRowsAffected(t *testing.T) {
	deleted := pgconn.NewCommandTag("DELETE 1")
	missed := pgconn.NewCommandTag("DELETE 0")

	assert.NoError(t, checkRowsAffected(deleted, store.ErrBoardNotFound))
	assert.Equal(t, store.ErrBoardNotFound, checkRowsAffected(missed, store.ErrBoardNotFound))
}
