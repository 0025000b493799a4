package services

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
)

// PostingSvc turns business events into balanced journal entries.
type PostingSvc interface {
	// Prepare builds and validates the lines of req without writing anything.
	Prepare(ctx context.Context, req domain.PostingRequest) ([]domain.TransactionLine, error)

	// Post writes one entry through repos, so it commits with the caller's unit of work.
	Post(ctx context.Context, repos portsrepo.Repositories, req domain.PostingRequest) (*domain.JournalEntry, error)

	// Unwind deletes an entry and its lines through repos. A nil or absent entry is a no-op.
	Unwind(ctx context.Context, repos portsrepo.Repositories, entryID *int64) error

	// PostEntry is Post in its own unit of work.
	PostEntry(ctx context.Context, req domain.PostingRequest) (*domain.JournalEntry, error)

	// UnwindEntry is Unwind in its own unit of work.
	UnwindEntry(ctx context.Context, entryID *int64) error
}

// JournalReaderSvc exposes read access to posted entries
type JournalReaderSvc interface {
	GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, params domain.ListParams) ([]domain.JournalEntry, *string, error)
}

// PostingSvcFacade combines posting and journal read access
type PostingSvcFacade interface {
	PostingSvc
	JournalReaderSvc
}
