package pgsql

import (
	"context"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

var vendorInvoiceTable = documentTable{
	table:      "vendor_invoices",
	dateColumn: "invoice_date",
	childTable: "vendor_invoice_lines",
	childFK:    "vendor_invoice_id",
	resource:   "vendor invoice",

	vendorColumn:     "vendor_id",
	departmentColumn: "department_id",
}

const vendorInvoiceColumns = `id, vendor_id, department_id, invoice_date, kind, total, journal_entry_id, created_at`

type PgxVendorInvoiceRepository struct {
	BaseRepository
}

func newPgxVendorInvoiceRepository(db querier) *PgxVendorInvoiceRepository {
	return &PgxVendorInvoiceRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.VendorInvoiceRepository = (*PgxVendorInvoiceRepository)(nil)

func scanVendorInvoice(row pgx.Row) (domain.VendorInvoice, error) {
	var inv domain.VendorInvoice
	var kind string
	err := row.Scan(&inv.ID, &inv.VendorID, &inv.DepartmentID, &inv.Date, &kind, &inv.Total, &inv.JournalEntryID, &inv.CreatedAt)
	inv.Kind = domain.VendorInvoiceKind(kind)
	return inv, err
}

func (r *PgxVendorInvoiceRepository) Save(ctx context.Context, inv *domain.VendorInvoice) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO vendor_invoices (vendor_id, department_id, invoice_date, kind, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		inv.VendorID, inv.DepartmentID, inv.Date, string(inv.Kind), inv.Total,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return mapError(err, "vendor invoice")
	}

	batch := &pgx.Batch{}
	ids := make([]*int64, 0, len(inv.Lines))
	for i := range inv.Lines {
		line := &inv.Lines[i]
		batch.Queue(`
			INSERT INTO vendor_invoice_lines (vendor_invoice_id, product_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			inv.ID, line.ProductName, line.Quantity, line.UnitPrice,
		)
		ids = append(ids, &line.ID)
	}
	return execBatch(ctx, r.db, batch, ids, vendorInvoiceTable.name(inv.ID))
}

func (r *PgxVendorInvoiceRepository) AttachEntry(ctx context.Context, docID, entryID int64) error {
	return attachEntry(ctx, r.db, vendorInvoiceTable, docID, entryID)
}

func (r *PgxVendorInvoiceRepository) FindByID(ctx context.Context, docID int64) (*domain.VendorInvoice, error) {
	inv, err := scanVendorInvoice(r.db.QueryRow(ctx, `SELECT `+vendorInvoiceColumns+` FROM vendor_invoices WHERE id = $1`, docID))
	if err != nil {
		return nil, mapError(err, vendorInvoiceTable.name(docID))
	}
	lines, err := r.linesOf(ctx, []int64{docID})
	if err != nil {
		return nil, err
	}
	inv.Lines = lines[docID]
	return &inv, nil
}

func (r *PgxVendorInvoiceRepository) linesOf(ctx context.Context, invoiceIDs []int64) (map[int64][]domain.VendorInvoiceLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, vendor_invoice_id, product_name, quantity, unit_price
		FROM vendor_invoice_lines
		WHERE vendor_invoice_id = ANY($1)
		ORDER BY id`, invoiceIDs)
	if err != nil {
		return nil, mapError(err, "vendor invoice lines")
	}
	defer rows.Close()

	grouped := make(map[int64][]domain.VendorInvoiceLine, len(invoiceIDs))
	for rows.Next() {
		var line domain.VendorInvoiceLine
		var invoiceID int64
		if err := rows.Scan(&line.ID, &invoiceID, &line.ProductName, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, mapError(err, "vendor invoice lines")
		}
		grouped[invoiceID] = append(grouped[invoiceID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "vendor invoice lines")
	}
	return grouped, nil
}

func (r *PgxVendorInvoiceRepository) List(ctx context.Context, params domain.ListParams) ([]domain.VendorInvoice, *string, error) {
	cur, err := newPageCursor(params)
	if err != nil {
		return nil, nil, err
	}
	rows, err := r.db.Query(ctx, pageQuery(vendorInvoiceTable, vendorInvoiceColumns), cur.args()...)
	if err != nil {
		return nil, nil, mapError(err, "vendor invoices")
	}
	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VendorInvoice, error) {
		return scanVendorInvoice(row)
	})
	if err != nil {
		return nil, nil, mapError(err, "vendor invoices")
	}
	invoices, next := trimPage(invoices, cur, func(v domain.VendorInvoice) (time.Time, int64) { return v.Date, v.ID })
	if len(invoices) == 0 {
		return invoices, next, nil
	}

	ids := make([]int64, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}
	lines, err := r.linesOf(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range invoices {
		invoices[i].Lines = lines[invoices[i].ID]
	}
	return invoices, next, nil
}

func (r *PgxVendorInvoiceRepository) Delete(ctx context.Context, docID int64) error {
	return deleteDocument(ctx, r.db, vendorInvoiceTable, docID)
}
