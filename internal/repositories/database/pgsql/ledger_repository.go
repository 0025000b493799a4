package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	"github.com/Yousifhashim249/ERP-project/internal/models"
	"github.com/jackc/pgx/v5"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for journal entries and their lines.
func newPgxLedgerRepository(db querier) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func toDomainLine(m models.TransactionLine) domain.TransactionLine {
	return domain.TransactionLine{
		ID:             m.ID,
		JournalEntryID: m.JournalEntryID,
		AccountID:      m.AccountID,
		Debit:          m.Debit,
		Credit:         m.Credit,
	}
}

func toDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		ID:          m.ID,
		Date:        m.EntryDate,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// CreateEntry inserts the entry row and then its lines in one batch.
func (r *PgxLedgerRepository) CreateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO journal_entries (entry_date, description)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		entry.Date, entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return mapError(err, "journal entry")
	}

	batch := &pgx.Batch{}
	ids := make([]*int64, 0, len(entry.Lines))
	for i := range entry.Lines {
		line := &entry.Lines[i]
		line.JournalEntryID = entry.ID
		batch.Queue(`
			INSERT INTO transaction_lines (journal_entry_id, account_id, debit, credit)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			entry.ID, line.AccountID, line.Debit, line.Credit,
		)
		ids = append(ids, &line.ID)
	}
	return execBatch(ctx, r.db, batch, ids, fmt.Sprintf("lines of journal entry %d", entry.ID))
}

// DeleteEntry removes the lines first, then the entry row.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	resource := fmt.Sprintf("journal entry %d", entryID)
	if _, err := r.db.Exec(ctx, `DELETE FROM transaction_lines WHERE journal_entry_id = $1`, entryID); err != nil {
		return mapDeleteError(err, resource)
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1`, entryID)
	if err != nil {
		return mapDeleteError(err, resource)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(resource)
	}
	return nil
}

func (r *PgxLedgerRepository) GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	resource := fmt.Sprintf("journal entry %d", entryID)
	rows, err := r.db.Query(ctx, `
		SELECT id, entry_date, description, created_at
		FROM journal_entries
		WHERE id = $1`, entryID)
	if err != nil {
		return nil, mapError(err, resource)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, mapError(err, resource)
	}

	entry := toDomainEntry(m)
	lines, err := r.linesOf(ctx, []int64{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID]
	return &entry, nil
}

// linesOf loads the lines of several entries, grouped by entry and ordered by id.
func (r *PgxLedgerRepository) linesOf(ctx context.Context, entryIDs []int64) (map[int64][]domain.TransactionLine, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, journal_entry_id, account_id, debit, credit
		FROM transaction_lines
		WHERE journal_entry_id = ANY($1)
		ORDER BY id`, entryIDs)
	if err != nil {
		return nil, mapError(err, "transaction lines")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TransactionLine])
	if err != nil {
		return nil, mapError(err, "transaction lines")
	}

	grouped := make(map[int64][]domain.TransactionLine, len(entryIDs))
	for _, m := range ms {
		grouped[m.JournalEntryID] = append(grouped[m.JournalEntryID], toDomainLine(m))
	}
	return grouped, nil
}

// ListEntries pages entries by (date desc, id desc) and loads their lines.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, params domain.ListParams) ([]domain.JournalEntry, *string, error) {
	cur, err := newPageCursor(params)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, entry_date, description, created_at
		FROM journal_entries
		WHERE ($1::date IS NULL OR (entry_date, id) < ($1::date, $2::bigint))
		ORDER BY entry_date DESC, id DESC
		LIMIT $3`, cur.date, cur.id, cur.fetch())
	if err != nil {
		return nil, nil, mapError(err, "journal entries")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, nil, mapError(err, "journal entries")
	}

	entries := make([]domain.JournalEntry, 0, len(ms))
	for _, m := range ms {
		entries = append(entries, toDomainEntry(m))
	}
	entries, next := trimPage(entries, cur, func(e domain.JournalEntry) (time.Time, int64) { return e.Date, e.ID })
	if len(entries) == 0 {
		return entries, next, nil
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	lines, err := r.linesOf(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].ID]
	}
	return entries, next, nil
}

// ListLines returns matching lines with their entry and account, ordered by
// (entry date, line id). Nil filter fields do not restrict.
func (r *PgxLedgerRepository) ListLines(ctx context.Context, filter domain.LineFilter) ([]domain.LineDetail, error) {
	rows, err := r.db.Query(ctx, `
		SELECT l.id, l.journal_entry_id, l.account_id, l.debit, l.credit,
		       e.entry_date, e.description, a.code, a.name, a.type
		FROM transaction_lines l
		JOIN journal_entries e ON e.id = l.journal_entry_id
		JOIN accounts a ON a.id = l.account_id
		WHERE ($1::bigint IS NULL OR l.account_id = $1)
		  AND ($2::bigint IS NULL OR l.journal_entry_id = $2)
		  AND ($3::date IS NULL OR e.entry_date >= $3)
		  AND ($4::date IS NULL OR e.entry_date <= $4)
		ORDER BY e.entry_date ASC, l.id ASC`,
		filter.AccountID, filter.JournalEntryID, filter.From, filter.To,
	)
	if err != nil {
		return nil, mapError(err, "transaction lines")
	}
	defer rows.Close()

	var details []domain.LineDetail
	for rows.Next() {
		var d domain.LineDetail
		var accountType string
		if err := rows.Scan(
			&d.ID, &d.JournalEntryID, &d.AccountID, &d.Debit, &d.Credit,
			&d.EntryDate, &d.EntryDescription, &d.AccountCode, &d.AccountName, &accountType,
		); err != nil {
			return nil, mapError(err, "transaction lines")
		}
		d.AccountType = domain.AccountType(accountType)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "transaction lines")
	}
	return details, nil
}
