package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingTemplate selects the fixed debit/credit shape of a posting.
type PostingTemplate string

const (
	TemplateVendorInvoiceConsumable PostingTemplate = "VENDOR_INVOICE_CONSUMABLE"
	TemplateVendorInvoiceInventory  PostingTemplate = "VENDOR_INVOICE_INVENTORY"
	TemplateVendorPayment           PostingTemplate = "VENDOR_PAYMENT"
	TemplateSalesInvoice            PostingTemplate = "SALES_INVOICE"
	TemplateDailyExpense            PostingTemplate = "DAILY_EXPENSE"
	TemplateOpeningBalance          PostingTemplate = "OPENING_BALANCE"
	TemplateManualAdjustment        PostingTemplate = "MANUAL_ADJUSTMENT"
)

// PostingRequest describes the financial effect of a business event.
// Two-leg templates use Amount and, where the template leaves a leg to the
// caller, DebitAccountID/CreditAccountID. Manual adjustments use Lines.
type PostingRequest struct {
	Template        PostingTemplate
	Date            time.Time
	Description     string
	Amount          decimal.Decimal
	DebitAccountID  *int64
	CreditAccountID *int64
	Lines           []TransactionLine
}
