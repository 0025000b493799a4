package repositories

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
)

// DocumentRepository stores one kind of business document and its child rows.
type DocumentRepository[T any] interface {
	// Save inserts the document shell (no entry reference) with its child rows and sets IDs.
	Save(ctx context.Context, doc *T) error

	// AttachEntry stores the posted entry reference on the document.
	AttachEntry(ctx context.Context, docID int64, entryID int64) error

	// FindByID retrieves the document with its child rows.
	FindByID(ctx context.Context, docID int64) (*T, error)

	// List pages documents by (date desc, id desc).
	List(ctx context.Context, params domain.ListParams) ([]T, *string, error)

	// Delete removes child rows and then the document row.
	Delete(ctx context.Context, docID int64) error
}

type VendorInvoiceRepository = DocumentRepository[domain.VendorInvoice]
type SalesInvoiceRepository = DocumentRepository[domain.SalesInvoice]
type PaymentRepository = DocumentRepository[domain.Payment]
type DailyExpenseRepository = DocumentRepository[domain.DailyExpense]
type AdjustmentRepository = DocumentRepository[domain.Adjustment]
