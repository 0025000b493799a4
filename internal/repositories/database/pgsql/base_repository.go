package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the repositories translate.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
)

// querier is the subset of pgx.Tx the repositories need. Every repository is
// bound to the transaction of the unit of work that created it.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db querier
}

// mapError turns a driver error into one of the application sentinels.
// resource names the thing being read or written and ends up in the message.
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s violates %s", apperrors.ErrDuplicate, resource, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return apperrors.NewValidationError("%s references a row that does not exist (%s)", resource, pgErr.ConstraintName)
		case pgCheckViolation, pgNotNullViolation, pgNumericOutOfRange:
			return apperrors.NewValidationError("%s: %s", resource, pgErr.Message)
		}
	}
	return apperrors.NewTransactionFailure("database operation failed on "+resource, err)
}

// mapDeleteError is mapError for deletes, where a foreign key violation means
// the row is still referenced rather than that a reference is missing.
func mapDeleteError(err error, resource string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s is still referenced (%s)", apperrors.ErrConflict, resource, pgErr.ConstraintName)
	}
	return mapError(err, resource)
}

// execBatch sends queued statements that each return one id and scans the
// ids in order.
func execBatch(ctx context.Context, db querier, batch *pgx.Batch, ids []*int64, resource string) error {
	br := db.SendBatch(ctx, batch)
	for _, id := range ids {
		if err := br.QueryRow().Scan(id); err != nil {
			br.Close()
			return mapError(err, resource)
		}
	}
	if err := br.Close(); err != nil {
		return mapError(err, resource)
	}
	return nil
}
