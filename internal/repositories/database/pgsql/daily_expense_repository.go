package pgsql

import (
	"context"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

var dailyExpenseTable = documentTable{
	table:      "daily_expenses",
	dateColumn: "expense_date",
	resource:   "daily expense",
}

const dailyExpenseColumns = `id, expense_date, description, amount, expense_account_id, credit_account_id, journal_entry_id, created_at`

type PgxDailyExpenseRepository struct {
	BaseRepository
}

func newPgxDailyExpenseRepository(db querier) *PgxDailyExpenseRepository {
	return &PgxDailyExpenseRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.DailyExpenseRepository = (*PgxDailyExpenseRepository)(nil)

func scanDailyExpense(row pgx.Row) (domain.DailyExpense, error) {
	var e domain.DailyExpense
	err := row.Scan(&e.ID, &e.Date, &e.Description, &e.Amount, &e.ExpenseAccountID, &e.CreditAccountID, &e.JournalEntryID, &e.CreatedAt)
	return e, err
}

func (r *PgxDailyExpenseRepository) Save(ctx context.Context, e *domain.DailyExpense) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO daily_expenses (expense_date, description, amount, expense_account_id, credit_account_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		e.Date, e.Description, e.Amount, e.ExpenseAccountID, e.CreditAccountID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return mapError(err, "daily expense")
	}
	return nil
}

func (r *PgxDailyExpenseRepository) AttachEntry(ctx context.Context, docID, entryID int64) error {
	return attachEntry(ctx, r.db, dailyExpenseTable, docID, entryID)
}

func (r *PgxDailyExpenseRepository) FindByID(ctx context.Context, docID int64) (*domain.DailyExpense, error) {
	e, err := scanDailyExpense(r.db.QueryRow(ctx, `SELECT `+dailyExpenseColumns+` FROM daily_expenses WHERE id = $1`, docID))
	if err != nil {
		return nil, mapError(err, dailyExpenseTable.name(docID))
	}
	return &e, nil
}

func (r *PgxDailyExpenseRepository) List(ctx context.Context, params domain.ListParams) ([]domain.DailyExpense, *string, error) {
	cur, err := newPageCursor(params)
	if err != nil {
		return nil, nil, err
	}
	rows, err := r.db.Query(ctx, pageQuery(dailyExpenseTable, dailyExpenseColumns), cur.args()...)
	if err != nil {
		return nil, nil, mapError(err, "daily expenses")
	}
	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyExpense, error) {
		return scanDailyExpense(row)
	})
	if err != nil {
		return nil, nil, mapError(err, "daily expenses")
	}
	expenses, next := trimPage(expenses, cur, func(e domain.DailyExpense) (time.Time, int64) { return e.Date, e.ID })
	return expenses, next, nil
}

func (r *PgxDailyExpenseRepository) Delete(ctx context.Context, docID int64) error {
	return deleteDocument(ctx, r.db, dailyExpenseTable, docID)
}
