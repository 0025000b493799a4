package repositories

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
)

// ReportingRepository provides aggregate queries over the ledger.
type ReportingRepository interface {
	// TrialBalance returns one row per account, including accounts without lines.
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)

	// ExpenseByMonth returns debit minus credit per expense account per calendar month.
	ExpenseByMonth(ctx context.Context) ([]domain.ExpenseAnalysisRow, error)

	// UnpostedDocuments lists documents of any type whose entry reference is null.
	UnpostedDocuments(ctx context.Context) ([]domain.UnpostedDocument, error)
}
