package pgsql

import (
	"context"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

var paymentTable = documentTable{
	table:      "payments",
	dateColumn: "payment_date",
	resource:   "payment",

	vendorColumn: "vendor_id",
}

const paymentColumns = `id, vendor_id, payment_date, amount, account_id, reference, journal_entry_id, created_at`

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db querier) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(&p.ID, &p.VendorID, &p.Date, &p.Amount, &p.AccountID, &p.Reference, &p.JournalEntryID, &p.CreatedAt)
	return p, err
}

func (r *PgxPaymentRepository) Save(ctx context.Context, p *domain.Payment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (vendor_id, payment_date, amount, account_id, reference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		p.VendorID, p.Date, p.Amount, p.AccountID, p.Reference,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapError(err, "payment")
	}
	return nil
}

func (r *PgxPaymentRepository) AttachEntry(ctx context.Context, docID, entryID int64) error {
	return attachEntry(ctx, r.db, paymentTable, docID, entryID)
}

func (r *PgxPaymentRepository) FindByID(ctx context.Context, docID int64) (*domain.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, docID))
	if err != nil {
		return nil, mapError(err, paymentTable.name(docID))
	}
	return &p, nil
}

func (r *PgxPaymentRepository) List(ctx context.Context, params domain.ListParams) ([]domain.Payment, *string, error) {
	cur, err := newPageCursor(params)
	if err != nil {
		return nil, nil, err
	}
	rows, err := r.db.Query(ctx, pageQuery(paymentTable, paymentColumns), cur.args()...)
	if err != nil {
		return nil, nil, mapError(err, "payments")
	}
	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, nil, mapError(err, "payments")
	}
	payments, next := trimPage(payments, cur, func(p domain.Payment) (time.Time, int64) { return p.Date, p.ID })
	return payments, next, nil
}

func (r *PgxPaymentRepository) Delete(ctx context.Context, docID int64) error {
	return deleteDocument(ctx, r.db, paymentTable, docID)
}
