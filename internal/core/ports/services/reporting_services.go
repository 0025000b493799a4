package services

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
)

// ReportingService derives financial views from the ledger. It has no write path.
type ReportingService interface {
	// LedgerView lists every line with its account's running balance
	LedgerView(ctx context.Context) ([]domain.LedgerRow, error)

	// AccountLedger is LedgerView restricted to one account
	AccountLedger(ctx context.Context, accountID int64) ([]domain.LedgerRow, error)

	TrialBalance(ctx context.Context) (*domain.TrialBalance, error)
	IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error)
	BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error)

	// ExpenseAnalysis breaks expense accounts down by calendar month
	ExpenseAnalysis(ctx context.Context) (*domain.ExpenseAnalysis, error)
}
