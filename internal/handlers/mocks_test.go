package handlers_test

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID int64) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) Resolve(ctx context.Context, codeOrName string) (*domain.Account, error) {
	args := m.Called(ctx, codeOrName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.AccountBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *MockAccountService) Balance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAccountService) Children(ctx context.Context, accountID int64) ([]domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) LedgerView(ctx context.Context) ([]domain.LedgerRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

func (m *MockReportingService) AccountLedger(ctx context.Context, accountID int64) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

func (m *MockReportingService) TrialBalance(ctx context.Context) (*domain.TrialBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}

func (m *MockReportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeStatement), args.Error(1)
}

func (m *MockReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSheet), args.Error(1)
}

func (m *MockReportingService) ExpenseAnalysis(ctx context.Context) (*domain.ExpenseAnalysis, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseAnalysis), args.Error(1)
}

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) Prepare(ctx context.Context, req domain.PostingRequest) ([]domain.TransactionLine, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLine), args.Error(1)
}

func (m *MockPostingService) Post(ctx context.Context, repos portsrepo.Repositories, req domain.PostingRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, repos, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockPostingService) Unwind(ctx context.Context, repos portsrepo.Repositories, entryID *int64) error {
	args := m.Called(ctx, repos, entryID)
	return args.Error(0)
}

func (m *MockPostingService) PostEntry(ctx context.Context, req domain.PostingRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockPostingService) UnwindEntry(ctx context.Context, entryID *int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockPostingService) GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockPostingService) ListEntries(ctx context.Context, params domain.ListParams) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// listResult unpacks the (items, next token, error) triple of a mocked List call.
func listResult[T any](args mock.Arguments) ([]T, *string, error) {
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]T), next, args.Error(2)
}

func docResult[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockDocumentService) CreateVendorInvoice(ctx context.Context, req dto.CreateVendorInvoiceRequest) (*domain.VendorInvoice, error) {
	return docResult[domain.VendorInvoice](m.Called(ctx, req))
}

func (m *MockDocumentService) GetVendorInvoice(ctx context.Context, id int64) (*domain.VendorInvoice, error) {
	return docResult[domain.VendorInvoice](m.Called(ctx, id))
}

func (m *MockDocumentService) ListVendorInvoices(ctx context.Context, params domain.ListParams) ([]domain.VendorInvoice, *string, error) {
	return listResult[domain.VendorInvoice](m.Called(ctx, params))
}

func (m *MockDocumentService) DeleteVendorInvoice(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentService) CreateSalesInvoice(ctx context.Context, req dto.CreateSalesInvoiceRequest) (*domain.SalesInvoice, error) {
	return docResult[domain.SalesInvoice](m.Called(ctx, req))
}

func (m *MockDocumentService) GetSalesInvoice(ctx context.Context, id int64) (*domain.SalesInvoice, error) {
	return docResult[domain.SalesInvoice](m.Called(ctx, id))
}

func (m *MockDocumentService) ListSalesInvoices(ctx context.Context, params domain.ListParams) ([]domain.SalesInvoice, *string, error) {
	return listResult[domain.SalesInvoice](m.Called(ctx, params))
}

func (m *MockDocumentService) DeleteSalesInvoice(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	return docResult[domain.Payment](m.Called(ctx, req))
}

func (m *MockDocumentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return docResult[domain.Payment](m.Called(ctx, id))
}

func (m *MockDocumentService) ListPayments(ctx context.Context, params domain.ListParams) ([]domain.Payment, *string, error) {
	return listResult[domain.Payment](m.Called(ctx, params))
}

func (m *MockDocumentService) DeletePayment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentService) CreateDailyExpense(ctx context.Context, req dto.CreateDailyExpenseRequest) (*domain.DailyExpense, error) {
	return docResult[domain.DailyExpense](m.Called(ctx, req))
}

func (m *MockDocumentService) GetDailyExpense(ctx context.Context, id int64) (*domain.DailyExpense, error) {
	return docResult[domain.DailyExpense](m.Called(ctx, id))
}

func (m *MockDocumentService) ListDailyExpenses(ctx context.Context, params domain.ListParams) ([]domain.DailyExpense, *string, error) {
	return listResult[domain.DailyExpense](m.Called(ctx, params))
}

func (m *MockDocumentService) DeleteDailyExpense(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentService) CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest) (*domain.Adjustment, error) {
	return docResult[domain.Adjustment](m.Called(ctx, req))
}

func (m *MockDocumentService) GetAdjustment(ctx context.Context, id int64) (*domain.Adjustment, error) {
	return docResult[domain.Adjustment](m.Called(ctx, id))
}

func (m *MockDocumentService) ListAdjustments(ctx context.Context, params domain.ListParams) ([]domain.Adjustment, *string, error) {
	return listResult[domain.Adjustment](m.Called(ctx, params))
}

func (m *MockDocumentService) DeleteAdjustment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDocumentService) ListUnposted(ctx context.Context) ([]domain.UnpostedDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnpostedDocument), args.Error(1)
}
