package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/utils/pagination"
)

// documentService keeps business documents in lockstep with their journal
// entries. Create runs shell insert, post, attach; delete runs unwind, child
// rows, document row. Each runs as one unit of work.
type documentService struct {
	BaseService
	txManager portsrepo.TransactionManager
	posting   portssvc.PostingSvc
}

// NewDocumentService creates the document lifecycle manager.
func NewDocumentService(txManager portsrepo.TransactionManager, posting portssvc.PostingSvc) portssvc.DocumentSvcFacade {
	return &documentService{
		txManager: txManager,
		posting:   posting,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// documentPtr constrains PT to *T where *T is a domain.Document.
type documentPtr[T any] interface {
	*T
	domain.Document
}

func createDocument[T any, PT documentPtr[T]](
	ctx context.Context,
	s *documentService,
	kind domain.DocumentType,
	selectRepo func(portsrepo.Repositories) portsrepo.DocumentRepository[T],
	doc PT,
	buildRequest func(PT) domain.PostingRequest,
) (*domain.JournalEntry, error) {
	// Role accounts and lines are checked before the shell is written; the
	// document id only feeds the entry description.
	if _, err := s.posting.Prepare(ctx, buildRequest(doc)); err != nil {
		s.LogError(ctx, err, "Document rejected before save", slog.String("document_type", string(kind)))
		return nil, err
	}

	var entry *domain.JournalEntry
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		repo := selectRepo(repos)
		if err := repo.Save(ctx, doc); err != nil {
			return fmt.Errorf("failed to save %s: %w", kind, err)
		}

		var err error
		entry, err = s.posting.Post(ctx, repos, buildRequest(doc))
		if err != nil {
			return err
		}

		if err := repo.AttachEntry(ctx, doc.DocumentID(), entry.ID); err != nil {
			return fmt.Errorf("failed to attach journal entry %d to %s %d: %w", entry.ID, kind, doc.DocumentID(), err)
		}
		doc.AttachEntry(entry.ID)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create document", slog.String("document_type", string(kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Document created",
		slog.String("document_type", string(kind)),
		slog.Int64("document_id", doc.DocumentID()),
		slog.Int64("entry_id", entry.ID))
	return entry, nil
}

func deleteDocument[T any, PT documentPtr[T]](
	ctx context.Context,
	s *documentService,
	kind domain.DocumentType,
	selectRepo func(portsrepo.Repositories) portsrepo.DocumentRepository[T],
	docID int64,
) error {
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		repo := selectRepo(repos)
		doc, err := repo.FindByID(ctx, docID)
		if err != nil {
			return err
		}

		// The entry goes first so no entry outlives the data it was posted from.
		if err := s.posting.Unwind(ctx, repos, PT(doc).PostedEntryID()); err != nil {
			return err
		}
		if err := repo.Delete(ctx, docID); err != nil {
			return fmt.Errorf("failed to delete %s %d: %w", kind, docID, err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete document", slog.String("document_type", string(kind)), slog.Int64("document_id", docID))
		return err
	}

	s.LogInfo(ctx, "Document deleted", slog.String("document_type", string(kind)), slog.Int64("document_id", docID))
	return nil
}

func getDocument[T any](ctx context.Context, s *documentService, selectRepo func(portsrepo.Repositories) portsrepo.DocumentRepository[T], docID int64) (*T, error) {
	var doc *T
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		doc, err = selectRepo(repos).FindByID(ctx, docID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// listFilters names the list filters a document type carries.
type listFilters struct {
	vendor     bool
	department bool
}

func (f listFilters) check(kind domain.DocumentType, params domain.ListParams) error {
	if params.VendorID != nil && !f.vendor {
		return apperrors.NewValidationError("%s documents cannot be filtered by vendor", kind)
	}
	if params.DepartmentID != nil && !f.department {
		return apperrors.NewValidationError("%s documents cannot be filtered by department", kind)
	}
	return nil
}

func listDocuments[T any](
	ctx context.Context,
	s *documentService,
	kind domain.DocumentType,
	filters listFilters,
	selectRepo func(portsrepo.Repositories) portsrepo.DocumentRepository[T],
	params domain.ListParams,
) ([]T, *string, error) {
	if err := filters.check(kind, params); err != nil {
		return nil, nil, err
	}
	params.Limit = pagination.NormalizeLimit(params.Limit)
	var (
		docs      []T
		nextToken *string
	)
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		docs, nextToken, err = selectRepo(repos).List(ctx, params)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return docs, nextToken, nil
}

func vendorInvoices(r portsrepo.Repositories) portsrepo.VendorInvoiceRepository {
	return r.VendorInvoices()
}
func salesInvoices(r portsrepo.Repositories) portsrepo.SalesInvoiceRepository {
	return r.SalesInvoices()
}
func payments(r portsrepo.Repositories) portsrepo.PaymentRepository { return r.Payments() }
func dailyExpenses(r portsrepo.Repositories) portsrepo.DailyExpenseRepository {
	return r.DailyExpenses()
}
func adjustments(r portsrepo.Repositories) portsrepo.AdjustmentRepository { return r.Adjustments() }

// ListUnposted implements portssvc.DocumentSvcFacade.
func (s *documentService) ListUnposted(ctx context.Context) ([]domain.UnpostedDocument, error) {
	var docs []domain.UnpostedDocument
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		docs, err = repos.Reporting().UnpostedDocuments(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		s.GetLogger(ctx).Warn("Documents without a journal entry found", slog.Int("count", len(docs)))
	}
	return docs, nil
}
