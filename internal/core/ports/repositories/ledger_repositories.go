package repositories

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
)

// LedgerReader defines read operations over journal entries and their lines.
type LedgerReader interface {
	// GetEntry retrieves an entry with its lines ordered by id.
	GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListEntries pages entries newest first. The returned token is nil on the last page.
	ListEntries(ctx context.Context, params domain.ListParams) ([]domain.JournalEntry, *string, error)

	// ListLines returns lines ordered by (entry date asc, line id asc).
	ListLines(ctx context.Context, filter domain.LineFilter) ([]domain.LineDetail, error)
}

// LedgerWriter defines the only two ways the ledger changes.
type LedgerWriter interface {
	// CreateEntry persists the entry and all its lines, setting their IDs.
	// A line referencing an unknown account fails with ErrValidation.
	CreateEntry(ctx context.Context, entry *domain.JournalEntry) error

	// DeleteEntry removes the lines of an entry and then the entry.
	// It fails with ErrNotFound when the entry does not exist.
	DeleteEntry(ctx context.Context, entryID int64) error
}

// LedgerRepository is the system of record for journal entries.
type LedgerRepository interface {
	LedgerReader
	LedgerWriter
}
