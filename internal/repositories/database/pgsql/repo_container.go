package pgsql

import (
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
)

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	db querier
}

var _ portsrepo.Repositories = (*txRepositories)(nil)

func newRepositories(db querier) *txRepositories {
	return &txRepositories{db: db}
}

func (r *txRepositories) Accounts() portsrepo.AccountRepository {
	return newPgxAccountRepository(r.db)
}

func (r *txRepositories) Ledger() portsrepo.LedgerRepository {
	return newPgxLedgerRepository(r.db)
}

func (r *txRepositories) VendorInvoices() portsrepo.VendorInvoiceRepository {
	return newPgxVendorInvoiceRepository(r.db)
}

func (r *txRepositories) SalesInvoices() portsrepo.SalesInvoiceRepository {
	return newPgxSalesInvoiceRepository(r.db)
}

func (r *txRepositories) Payments() portsrepo.PaymentRepository {
	return newPgxPaymentRepository(r.db)
}

func (r *txRepositories) DailyExpenses() portsrepo.DailyExpenseRepository {
	return newPgxDailyExpenseRepository(r.db)
}

func (r *txRepositories) Adjustments() portsrepo.AdjustmentRepository {
	return newPgxAdjustmentRepository(r.db)
}

func (r *txRepositories) Reporting() portsrepo.ReportingRepository {
	return newPgxReportingRepository(r.db)
}
