package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/taskerhq/tasker-api/internal/store"
)

// PostgreSQL error codes.
const (
	// uniqueViolationCode is the error code for unique constraint violations.
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the error code for foreign key violations.
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the error code for check constraint violations.
	checkViolationCode = "23514"

	// notNullViolationCode is the error code for not null violations.
	notNullViolationCode = "23502"
)

// MapError translates a driver error into the store vocabulary.
// Expected outcomes map to sentinels; unexpected failures are wrapped
// in a StorageError carrying the entity and operation for the logs.
// All store methods route their errors through this function so the
// translation happens exactly once.
func MapError(err error, entity, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", store.ErrNotFound, entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %s (%s)", store.ErrDuplicate, entity, pgErr.ConstraintName)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: %s (%s)", store.ErrInvalidReference, entity, pgErr.ConstraintName)
		case checkViolationCode, notNullViolationCode:
			return fmt.Errorf("%w: %s (%s)", store.ErrInvalidReference, entity, pgErr.ColumnName)
		}
	}

	// Context cancellation is the caller's doing, not a storage fault.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return store.NewStorageError(entity, operation, err)
}

// IsUniqueViolation checks if the given error is a unique constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation checks if the given error is a foreign key
// constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// checkRowsAffected converts a zero-row UPDATE/DELETE into the
// entity's not-found sentinel.
func checkRowsAffected(tag pgconn.CommandTag, notFound error) error {
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
