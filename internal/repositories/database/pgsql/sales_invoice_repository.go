package pgsql

import (
	"context"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

var salesInvoiceTable = documentTable{
	table:      "sales_invoices",
	dateColumn: "invoice_date",
	childTable: "sales_invoice_items",
	childFK:    "sales_invoice_id",
	resource:   "sales invoice",

	departmentColumn: "department_id",
}

const salesInvoiceColumns = `id, customer_name, department_id, invoice_date, total, journal_entry_id, created_at`

type PgxSalesInvoiceRepository struct {
	BaseRepository
}

func newPgxSalesInvoiceRepository(db querier) *PgxSalesInvoiceRepository {
	return &PgxSalesInvoiceRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.SalesInvoiceRepository = (*PgxSalesInvoiceRepository)(nil)

func scanSalesInvoice(row pgx.Row) (domain.SalesInvoice, error) {
	var inv domain.SalesInvoice
	err := row.Scan(&inv.ID, &inv.CustomerName, &inv.DepartmentID, &inv.Date, &inv.Total, &inv.JournalEntryID, &inv.CreatedAt)
	return inv, err
}

func (r *PgxSalesInvoiceRepository) Save(ctx context.Context, inv *domain.SalesInvoice) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO sales_invoices (customer_name, department_id, invoice_date, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		inv.CustomerName, inv.DepartmentID, inv.Date, inv.Total,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return mapError(err, "sales invoice")
	}

	batch := &pgx.Batch{}
	ids := make([]*int64, 0, len(inv.Items))
	for i := range inv.Items {
		item := &inv.Items[i]
		batch.Queue(`
			INSERT INTO sales_invoice_items (sales_invoice_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			inv.ID, item.ProductID, item.Quantity, item.Price,
		)
		ids = append(ids, &item.ID)
	}
	return execBatch(ctx, r.db, batch, ids, salesInvoiceTable.name(inv.ID))
}

func (r *PgxSalesInvoiceRepository) AttachEntry(ctx context.Context, docID, entryID int64) error {
	return attachEntry(ctx, r.db, salesInvoiceTable, docID, entryID)
}

func (r *PgxSalesInvoiceRepository) FindByID(ctx context.Context, docID int64) (*domain.SalesInvoice, error) {
	inv, err := scanSalesInvoice(r.db.QueryRow(ctx, `SELECT `+salesInvoiceColumns+` FROM sales_invoices WHERE id = $1`, docID))
	if err != nil {
		return nil, mapError(err, salesInvoiceTable.name(docID))
	}
	items, err := r.itemsOf(ctx, []int64{docID})
	if err != nil {
		return nil, err
	}
	inv.Items = items[docID]
	return &inv, nil
}

func (r *PgxSalesInvoiceRepository) itemsOf(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.SalesInvoiceItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, sales_invoice_id, product_id, quantity, price
		FROM sales_invoice_items
		WHERE sales_invoice_id = ANY($1)
		ORDER BY id`, invoiceIDs)
	if err != nil {
		return nil, mapError(err, "sales invoice items")
	}
	defer rows.Close()

	grouped := make(map[int64][]domain.SalesInvoiceItem, len(invoiceIDs))
	for rows.Next() {
		var item domain.SalesInvoiceItem
		var invoiceID int64
		if err := rows.Scan(&item.ID, &invoiceID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, mapError(err, "sales invoice items")
		}
		grouped[invoiceID] = append(grouped[invoiceID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "sales invoice items")
	}
	return grouped, nil
}

func (r *PgxSalesInvoiceRepository) List(ctx context.Context, params domain.ListParams) ([]domain.SalesInvoice, *string, error) {
	cur, err := newPageCursor(params)
	if err != nil {
		return nil, nil, err
	}
	rows, err := r.db.Query(ctx, pageQuery(salesInvoiceTable, salesInvoiceColumns), cur.args()...)
	if err != nil {
		return nil, nil, mapError(err, "sales invoices")
	}
	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SalesInvoice, error) {
		return scanSalesInvoice(row)
	})
	if err != nil {
		return nil, nil, mapError(err, "sales invoices")
	}
	invoices, next := trimPage(invoices, cur, func(s domain.SalesInvoice) (time.Time, int64) { return s.Date, s.ID })
	if len(invoices) == 0 {
		return invoices, next, nil
	}

	ids := make([]int64, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}
	items, err := r.itemsOf(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range invoices {
		invoices[i].Items = items[invoices[i].ID]
	}
	return invoices, next, nil
}

func (r *PgxSalesInvoiceRepository) Delete(ctx context.Context, docID int64) error {
	return deleteDocument(ctx, r.db, salesInvoiceTable, docID)
}
