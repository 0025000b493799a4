package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType identifies the kind of business document that owns a journal entry.
type DocumentType string

const (
	DocVendorInvoice DocumentType = "VENDOR_INVOICE"
	DocSalesInvoice  DocumentType = "SALES_INVOICE"
	DocPayment       DocumentType = "PAYMENT"
	DocDailyExpense  DocumentType = "DAILY_EXPENSE"
	DocAdjustment    DocumentType = "ADJUSTMENT"
)

// Document is a business record that owns at most one posted journal entry.
// The entry reference is nil only while the document is being created.
type Document interface {
	DocumentID() int64
	PostedEntryID() *int64
	AttachEntry(entryID int64)
}

// UnpostedDocument identifies a document whose entry reference is missing.
type UnpostedDocument struct {
	Type DocumentType `json:"type"`
	ID   int64        `json:"id"`
	Date time.Time    `json:"date"`
}

// VendorInvoiceKind selects which debit account a vendor invoice is posted to.
type VendorInvoiceKind string

const (
	VendorInvoiceConsumable VendorInvoiceKind = "consumable"
	VendorInvoiceInventory  VendorInvoiceKind = "inventory"
)

func (k VendorInvoiceKind) IsValid() bool {
	return k == VendorInvoiceConsumable || k == VendorInvoiceInventory
}

type VendorInvoice struct {
	ID             int64               `json:"id"`
	VendorID       int64               `json:"vendorID"`
	DepartmentID   *int64              `json:"departmentID,omitempty"`
	Date           time.Time           `json:"date"`
	Kind           VendorInvoiceKind   `json:"kind"`
	Total          decimal.Decimal     `json:"total"`
	Lines          []VendorInvoiceLine `json:"lines"`
	JournalEntryID *int64              `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

type VendorInvoiceLine struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// LinesTotal is the sum of quantity times unit price over all lines.
func (v *VendorInvoice) LinesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range v.Lines {
		total = total.Add(l.Quantity.Mul(l.UnitPrice))
	}
	return total
}

func (v *VendorInvoice) DocumentID() int64         { return v.ID }
func (v *VendorInvoice) PostedEntryID() *int64     { return v.JournalEntryID }
func (v *VendorInvoice) AttachEntry(entryID int64) { v.JournalEntryID = &entryID }

type SalesInvoice struct {
	ID             int64              `json:"id"`
	CustomerName   string             `json:"customerName"`
	DepartmentID   *int64             `json:"departmentID,omitempty"`
	Date           time.Time          `json:"date"`
	Total          decimal.Decimal    `json:"total"`
	Items          []SalesInvoiceItem `json:"items"`
	JournalEntryID *int64             `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type SalesInvoiceItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ItemsTotal is the sum of quantity times price over all items.
func (s *SalesInvoice) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.Quantity.Mul(it.Price))
	}
	return total
}

func (s *SalesInvoice) DocumentID() int64         { return s.ID }
func (s *SalesInvoice) PostedEntryID() *int64     { return s.JournalEntryID }
func (s *SalesInvoice) AttachEntry(entryID int64) { s.JournalEntryID = &entryID }

// Payment settles a vendor balance out of a disbursement account.
type Payment struct {
	ID             int64           `json:"id"`
	VendorID       int64           `json:"vendorID"`
	Date           time.Time       `json:"date"`
	Amount         decimal.Decimal `json:"amount"`
	AccountID      int64           `json:"accountID"`
	Reference      string          `json:"reference"`
	JournalEntryID *int64          `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (p *Payment) DocumentID() int64         { return p.ID }
func (p *Payment) PostedEntryID() *int64     { return p.JournalEntryID }
func (p *Payment) AttachEntry(entryID int64) { p.JournalEntryID = &entryID }

type DailyExpense struct {
	ID               int64           `json:"id"`
	Date             time.Time       `json:"date"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	ExpenseAccountID int64           `json:"expenseAccountID"`
	CreditAccountID  int64           `json:"creditAccountID"`
	JournalEntryID   *int64          `json:"journalEntryID,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

func (d *DailyExpense) DocumentID() int64         { return d.ID }
func (d *DailyExpense) PostedEntryID() *int64     { return d.JournalEntryID }
func (d *DailyExpense) AttachEntry(entryID int64) { d.JournalEntryID = &entryID }

// Adjustment is a manually specified N-line entry. Its lines live on the
// journal entry; Lines is populated from there when read back.
type Adjustment struct {
	ID             int64             `json:"id"`
	Date           time.Time         `json:"date"`
	Description    string            `json:"description"`
	Lines          []TransactionLine `json:"lines"`
	JournalEntryID *int64            `json:"journalEntryID,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

func (a *Adjustment) DocumentID() int64         { return a.ID }
func (a *Adjustment) PostedEntryID() *int64     { return a.JournalEntryID }
func (a *Adjustment) AttachEntry(entryID int64) { a.JournalEntryID = &entryID }
