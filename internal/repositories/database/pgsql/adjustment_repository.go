package pgsql

import (
	"context"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

var adjustmentTable = documentTable{
	table:      "adjustments",
	dateColumn: "adjustment_date",
	resource:   "adjustment",
}

const adjustmentColumns = `id, adjustment_date, description, journal_entry_id, created_at`

// PgxAdjustmentRepository stores adjustment headers. The lines of an
// adjustment live on its journal entry.
type PgxAdjustmentRepository struct {
	BaseRepository
}

func newPgxAdjustmentRepository(db querier) *PgxAdjustmentRepository {
	return &PgxAdjustmentRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.AdjustmentRepository = (*PgxAdjustmentRepository)(nil)

func scanAdjustment(row pgx.Row) (domain.Adjustment, error) {
	var a domain.Adjustment
	err := row.Scan(&a.ID, &a.Date, &a.Description, &a.JournalEntryID, &a.CreatedAt)
	return a, err
}

func (r *PgxAdjustmentRepository) Save(ctx context.Context, a *domain.Adjustment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO adjustments (adjustment_date, description)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		a.Date, a.Description,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return mapError(err, "adjustment")
	}
	return nil
}

func (r *PgxAdjustmentRepository) AttachEntry(ctx context.Context, docID, entryID int64) error {
	return attachEntry(ctx, r.db, adjustmentTable, docID, entryID)
}

func (r *PgxAdjustmentRepository) FindByID(ctx context.Context, docID int64) (*domain.Adjustment, error) {
	a, err := scanAdjustment(r.db.QueryRow(ctx, `SELECT `+adjustmentColumns+` FROM adjustments WHERE id = $1`, docID))
	if err != nil {
		return nil, mapError(err, adjustmentTable.name(docID))
	}
	return &a, nil
}

func (r *PgxAdjustmentRepository) List(ctx context.Context, params domain.ListParams) ([]domain.Adjustment, *string, error) {
	cur, err := newPageCursor(params)
	if err != nil {
		return nil, nil, err
	}
	rows, err := r.db.Query(ctx, pageQuery(adjustmentTable, adjustmentColumns), cur.args()...)
	if err != nil {
		return nil, nil, mapError(err, "adjustments")
	}
	adjustments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Adjustment, error) {
		return scanAdjustment(row)
	})
	if err != nil {
		return nil, nil, mapError(err, "adjustments")
	}
	adjustments, next := trimPage(adjustments, cur, func(a domain.Adjustment) (time.Time, int64) { return a.Date, a.ID })
	return adjustments, next, nil
}

func (r *PgxAdjustmentRepository) Delete(ctx context.Context, docID int64) error {
	return deleteDocument(ctx, r.db, adjustmentTable, docID)
}
