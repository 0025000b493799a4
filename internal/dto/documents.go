package dto

import (
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/shopspring/decimal"
)

type VendorInvoiceLineRequest struct {
	ProductName string          `json:"productName" binding:"required,max=255"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateVendorInvoiceRequest records goods or consumables bought on credit.
// Total defaults to the sum of the lines; when given it must agree with them.
type CreateVendorInvoiceRequest struct {
	VendorID     int64                      `json:"vendorID" binding:"required,gt=0"`
	DepartmentID *int64                     `json:"departmentID" binding:"omitempty,gt=0"`
	Date         *string                    `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Kind         domain.VendorInvoiceKind   `json:"kind" binding:"required,oneof=consumable inventory"`
	Total        *decimal.Decimal           `json:"total"`
	Lines        []VendorInvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

type SalesInvoiceItemRequest struct {
	ProductID int64           `json:"productID" binding:"required,gt=0"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CreateSalesInvoiceRequest struct {
	CustomerName string                    `json:"customerName" binding:"required,max=255"`
	DepartmentID *int64                    `json:"departmentID" binding:"omitempty,gt=0"`
	Date         *string                   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Total        *decimal.Decimal          `json:"total"`
	Items        []SalesInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreatePaymentRequest pays a vendor out of the account identified by AccountID.
type CreatePaymentRequest struct {
	VendorID  int64           `json:"vendorID" binding:"required,gt=0"`
	Date      *string         `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID int64           `json:"accountID" binding:"required,gt=0"`
	Reference string          `json:"reference" binding:"max=255"`
}

type CreateDailyExpenseRequest struct {
	Date             *string         `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description      string          `json:"description" binding:"required,max=500"`
	Amount           decimal.Decimal `json:"amount"`
	ExpenseAccountID int64           `json:"expenseAccountID" binding:"required,gt=0"`
	CreditAccountID  int64           `json:"creditAccountID" binding:"required,gt=0"`
}

type AdjustmentLineRequest struct {
	AccountID int64           `json:"accountID" binding:"required,gt=0"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

type CreateAdjustmentRequest struct {
	Date        *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Description string                  `json:"description" binding:"required,max=500"`
	Lines       []AdjustmentLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToLines converts the request lines into transaction lines.
func (r CreateAdjustmentRequest) ToLines() []domain.TransactionLine {
	lines := make([]domain.TransactionLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.TransactionLine{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit}
	}
	return lines
}
