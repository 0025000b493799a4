package pgsql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/Yousifhashim249/ERP-project/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionManager runs units of work in PostgreSQL transactions.
type PgxTransactionManager struct {
	pool *pgxpool.Pool
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// NewTransactionManager creates a transaction manager over the pool.
func NewTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{pool: pool}
}

// WithinTx runs fn in a read committed, read-write transaction.
func (m *PgxTransactionManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.Repositories) error) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}, fn)
}

// WithinReadOnlyTx runs fn in a repeatable read, read-only transaction so that
// every query of a report sees the same snapshot.
func (m *PgxTransactionManager) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.Repositories) error) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (m *PgxTransactionManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, repos portsrepo.Repositories) error) error {
	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return apperrors.NewTransactionFailure("failed to begin transaction", err)
	}
	// Will be a no-op if the transaction is committed successfully.
	defer func() {
		rbErr := tx.Rollback(context.WithoutCancel(ctx))
		if rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			middleware.GetLoggerFromCtx(ctx).Error("failed to roll back transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, newRepositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewTransactionFailure("failed to commit transaction", err)
	}
	return nil
}
