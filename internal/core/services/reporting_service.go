package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface. Every report
// reads inside one read-only unit of work so it never sees half an entry.
type reportingService struct {
	BaseService
	txManager portsrepo.TransactionManager
}

// NewReportingService creates a new reporting service
func NewReportingService(txManager portsrepo.TransactionManager) portssvc.ReportingService {
	return &reportingService{txManager: txManager}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// LedgerView implements portssvc.ReportingService.
func (s *reportingService) LedgerView(ctx context.Context) ([]domain.LedgerRow, error) {
	return s.ledger(ctx, domain.LineFilter{})
}

// AccountLedger implements portssvc.ReportingService.
func (s *reportingService) AccountLedger(ctx context.Context, accountID int64) ([]domain.LedgerRow, error) {
	return s.ledger(ctx, domain.LineFilter{AccountID: &accountID})
}

func (s *reportingService) ledger(ctx context.Context, filter domain.LineFilter) ([]domain.LedgerRow, error) {
	var lines []domain.LineDetail
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		if filter.AccountID != nil {
			if _, err := repos.Accounts().FindAccountByID(ctx, *filter.AccountID); err != nil {
				return err
			}
		}
		var err error
		lines, err = repos.Ledger().ListLines(ctx, filter)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger lines")
		return nil, err
	}

	rows := accounting.RunningBalances(lines)
	s.LogDebug(ctx, "Ledger view generated", slog.Int("row_count", len(rows)))
	return rows, nil
}

// TrialBalance implements portssvc.ReportingService.
func (s *reportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	var rows []domain.TrialBalanceRow
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		rows, err = repos.Reporting().TrialBalance(ctx)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get trial balance data")
		return nil, err
	}

	report := &domain.TrialBalance{Rows: rows, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, row := range rows {
		report.TotalDebit = report.TotalDebit.Add(row.TotalDebit)
		report.TotalCredit = report.TotalCredit.Add(row.TotalCredit)
	}
	if !report.TotalDebit.Equal(report.TotalCredit) {
		s.GetLogger(ctx).Warn("Trial balance does not net to zero",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	return report, nil
}

// accountAmounts groups every account's signed balance by type.
func (s *reportingService) accountAmounts(ctx context.Context) (map[domain.AccountType][]domain.AccountAmount, error) {
	var totals []domain.AccountTotals
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		totals, err = repos.Accounts().ListAccountTotals(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	byType := make(map[domain.AccountType][]domain.AccountAmount, len(domain.AccountTypes))
	for _, t := range totals {
		net, err := accounting.SignedBalance(t.Type, t.TotalDebit, t.TotalCredit)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", t.ID, err)
		}
		byType[t.Type] = append(byType[t.Type], domain.AccountAmount{
			AccountID: t.ID,
			Code:      t.Code,
			Name:      t.Name,
			NetAmount: net,
		})
	}
	return byType, nil
}

func sumAmounts(amounts []domain.AccountAmount) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.NetAmount)
	}
	return total
}

// IncomeStatement implements portssvc.ReportingService.
func (s *reportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	byType, err := s.accountAmounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to build income statement")
		return nil, err
	}

	report := &domain.IncomeStatement{
		RevenueAccounts: nonNil(byType[domain.Revenue]),
		ExpenseAccounts: nonNil(byType[domain.Expense]),
	}
	report.Revenue = sumAmounts(report.RevenueAccounts)
	report.Expense = sumAmounts(report.ExpenseAccounts)
	report.NetIncome = report.Revenue.Sub(report.Expense)
	return report, nil
}

// BalanceSheet implements portssvc.ReportingService. Assets are not asserted
// to equal liabilities plus equity; a gap points at an upstream posting defect.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	byType, err := s.accountAmounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to build balance sheet")
		return nil, err
	}

	report := &domain.BalanceSheet{
		AssetAccounts:     nonNil(byType[domain.Asset]),
		LiabilityAccounts: nonNil(byType[domain.Liability]),
		EquityAccounts:    nonNil(byType[domain.Equity]),
	}
	report.Assets = sumAmounts(report.AssetAccounts)
	report.Liabilities = sumAmounts(report.LiabilityAccounts)
	report.Equity = sumAmounts(report.EquityAccounts)
	return report, nil
}

// ExpenseAnalysis implements portssvc.ReportingService.
func (s *reportingService) ExpenseAnalysis(ctx context.Context) (*domain.ExpenseAnalysis, error) {
	var rows []domain.ExpenseAnalysisRow
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		rows, err = repos.Reporting().ExpenseByMonth(ctx)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to get expense analysis data")
		return nil, err
	}

	report := &domain.ExpenseAnalysis{Rows: nonNil(rows), Total: decimal.Zero}
	for _, row := range rows {
		report.Total = report.Total.Add(row.Amount)
	}
	return report, nil
}

// nonNil keeps empty report sections serialized as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
