package services

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
)

type VendorInvoiceSvc interface {
	CreateVendorInvoice(ctx context.Context, req dto.CreateVendorInvoiceRequest) (*domain.VendorInvoice, error)
	GetVendorInvoice(ctx context.Context, id int64) (*domain.VendorInvoice, error)
	ListVendorInvoices(ctx context.Context, params domain.ListParams) ([]domain.VendorInvoice, *string, error)
	DeleteVendorInvoice(ctx context.Context, id int64) error
}

type SalesInvoiceSvc interface {
	CreateSalesInvoice(ctx context.Context, req dto.CreateSalesInvoiceRequest) (*domain.SalesInvoice, error)
	GetSalesInvoice(ctx context.Context, id int64) (*domain.SalesInvoice, error)
	ListSalesInvoices(ctx context.Context, params domain.ListParams) ([]domain.SalesInvoice, *string, error)
	DeleteSalesInvoice(ctx context.Context, id int64) error
}

type PaymentSvc interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, params domain.ListParams) ([]domain.Payment, *string, error)
	DeletePayment(ctx context.Context, id int64) error
}

type DailyExpenseSvc interface {
	CreateDailyExpense(ctx context.Context, req dto.CreateDailyExpenseRequest) (*domain.DailyExpense, error)
	GetDailyExpense(ctx context.Context, id int64) (*domain.DailyExpense, error)
	ListDailyExpenses(ctx context.Context, params domain.ListParams) ([]domain.DailyExpense, *string, error)
	DeleteDailyExpense(ctx context.Context, id int64) error
}

type AdjustmentSvc interface {
	CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest) (*domain.Adjustment, error)
	GetAdjustment(ctx context.Context, id int64) (*domain.Adjustment, error)
	ListAdjustments(ctx context.Context, params domain.ListParams) ([]domain.Adjustment, *string, error)
	DeleteAdjustment(ctx context.Context, id int64) error
}

// DocumentSvcFacade is the document lifecycle manager: every create posts an
// entry and every delete unwinds it, each in a single unit of work.
type DocumentSvcFacade interface {
	VendorInvoiceSvc
	SalesInvoiceSvc
	PaymentSvc
	DailyExpenseSvc
	AdjustmentSvc

	// ListUnposted lists documents left without an entry reference.
	ListUnposted(ctx context.Context) ([]domain.UnpostedDocument, error)
}
