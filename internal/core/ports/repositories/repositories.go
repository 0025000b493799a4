package repositories

import "context"

// Repositories gives access to every repository bound to one unit of work.
type Repositories interface {
	Accounts() AccountRepository
	Ledger() LedgerRepository
	VendorInvoices() VendorInvoiceRepository
	SalesInvoices() SalesInvoiceRepository
	Payments() PaymentRepository
	DailyExpenses() DailyExpenseRepository
	Adjustments() AdjustmentRepository
	Reporting() ReportingRepository
}

// TransactionManager runs a function as a single unit of work. If fn returns an
// error, or the commit fails, nothing fn wrote is kept.
type TransactionManager interface {
	// WithinTx runs fn in a read-write transaction.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error

	// WithinReadOnlyTx runs fn against a consistent snapshot.
	WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
