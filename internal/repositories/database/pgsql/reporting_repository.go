package pgsql

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db querier) *PgxReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// TrialBalance sums the lines of every account. Accounts without lines are
// included with zero totals.
func (r *PgxReportingRepository) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.code, a.name, a.type,
		       COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM accounts a
		LEFT JOIN transaction_lines l ON l.account_id = a.id
		GROUP BY a.id, a.code, a.name, a.type
		ORDER BY a.code`)
	if err != nil {
		return nil, mapError(err, "trial balance")
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TrialBalanceRow, error) {
		var tb domain.TrialBalanceRow
		var accountType string
		err := row.Scan(&tb.AccountID, &tb.AccountCode, &tb.AccountName, &accountType, &tb.TotalDebit, &tb.TotalCredit)
		tb.AccountType = domain.AccountType(accountType)
		return tb, err
	})
	if err != nil {
		return nil, mapError(err, "trial balance")
	}
	return result, nil
}

// ExpenseByMonth nets debits against credits of expense accounts per calendar month.
func (r *PgxReportingRepository) ExpenseByMonth(ctx context.Context) ([]domain.ExpenseAnalysisRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.code, a.name,
		       date_trunc('month', e.entry_date)::date AS month,
		       SUM(l.debit - l.credit) AS amount
		FROM transaction_lines l
		JOIN journal_entries e ON e.id = l.journal_entry_id
		JOIN accounts a ON a.id = l.account_id
		WHERE a.type = 'EXPENSE'
		GROUP BY a.id, a.code, a.name, month
		ORDER BY month, a.code`)
	if err != nil {
		return nil, mapError(err, "expense analysis")
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExpenseAnalysisRow, error) {
		var ea domain.ExpenseAnalysisRow
		err := row.Scan(&ea.AccountID, &ea.AccountCode, &ea.AccountName, &ea.Month, &ea.Amount)
		return ea, err
	})
	if err != nil {
		return nil, mapError(err, "expense analysis")
	}
	return result, nil
}

// UnpostedDocuments finds documents of every type whose entry reference is null.
func (r *PgxReportingRepository) UnpostedDocuments(ctx context.Context) ([]domain.UnpostedDocument, error) {
	rows, err := r.db.Query(ctx, `
		SELECT 'VENDOR_INVOICE' AS type, id, invoice_date AS date FROM vendor_invoices WHERE journal_entry_id IS NULL
		UNION ALL
		SELECT 'SALES_INVOICE', id, invoice_date FROM sales_invoices WHERE journal_entry_id IS NULL
		UNION ALL
		SELECT 'PAYMENT', id, payment_date FROM payments WHERE journal_entry_id IS NULL
		UNION ALL
		SELECT 'DAILY_EXPENSE', id, expense_date FROM daily_expenses WHERE journal_entry_id IS NULL
		UNION ALL
		SELECT 'ADJUSTMENT', id, adjustment_date FROM adjustments WHERE journal_entry_id IS NULL
		ORDER BY date, type, id`)
	if err != nil {
		return nil, mapError(err, "unposted documents")
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UnpostedDocument, error) {
		var doc domain.UnpostedDocument
		var docType string
		err := row.Scan(&docType, &doc.ID, &doc.Date)
		doc.Type = domain.DocumentType(docType)
		return doc, err
	})
	if err != nil {
		return nil, mapError(err, "unposted documents")
	}
	return result, nil
}
