package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/utils/accounting"
	"github.com/Yousifhashim249/ERP-project/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// postingService builds and commits balanced journal entries on behalf of documents.
type postingService struct {
	BaseService
	txManager                  portsrepo.TransactionManager
	roles                      *RoleBook
	allowUnbalancedAdjustments bool
}

// PostingServiceOption is a functional option for configuring the posting service
type PostingServiceOption func(*postingService)

// WithUnbalancedAdjustments lets manual adjustments skip the debit == credit check.
// Every other template is always checked.
func WithUnbalancedAdjustments(allow bool) PostingServiceOption {
	return func(s *postingService) {
		s.allowUnbalancedAdjustments = allow
	}
}

// NewPostingService creates a new posting service.
func NewPostingService(txManager portsrepo.TransactionManager, roles *RoleBook, options ...PostingServiceOption) portssvc.PostingSvcFacade {
	svc := &postingService{
		txManager: txManager,
		roles:     roles,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

var templateDescriptions = map[domain.PostingTemplate]string{
	domain.TemplateVendorInvoiceConsumable: "Vendor invoice (consumables)",
	domain.TemplateVendorInvoiceInventory:  "Vendor invoice (inventory)",
	domain.TemplateVendorPayment:           "Payment to vendor",
	domain.TemplateSalesInvoice:            "Sales invoice",
	domain.TemplateDailyExpense:            "Daily expense",
	domain.TemplateOpeningBalance:          "Opening balance",
	domain.TemplateManualAdjustment:        "Manual adjustment",
}

// Prepare implements portssvc.PostingSvc. It resolves the template's role
// accounts and validates the lines without touching the ledger.
func (s *postingService) Prepare(ctx context.Context, req domain.PostingRequest) ([]domain.TransactionLine, error) {
	lines, err := s.buildLines(req)
	if err != nil {
		s.LogError(ctx, err, "Posting request rejected", slog.String("template", string(req.Template)))
		return nil, err
	}

	requireBalanced := req.Template != domain.TemplateManualAdjustment || !s.allowUnbalancedAdjustments
	if err := accounting.ValidateEntryLines(lines, requireBalanced); err != nil {
		s.LogError(ctx, err, "Journal entry failed validation", slog.String("template", string(req.Template)))
		return nil, err
	}
	return lines, nil
}

// Post implements portssvc.PostingSvc. Every account is resolved and every
// line validated before the ledger is touched.
func (s *postingService) Post(ctx context.Context, repos portsrepo.Repositories, req domain.PostingRequest) (*domain.JournalEntry, error) {
	lines, err := s.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}

	entry := &domain.JournalEntry{
		Date:        req.Date,
		Description: req.Description,
		Lines:       lines,
	}
	if entry.Date.IsZero() {
		y, m, d := time.Now().Date()
		entry.Date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if entry.Description == "" {
		entry.Description = templateDescriptions[req.Template]
	}

	if err := repos.Ledger().CreateEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to create journal entry", slog.String("template", string(req.Template)))
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	if !entry.IsBalanced() {
		s.GetLogger(ctx).Warn("Unbalanced manual adjustment posted",
			slog.Int64("entry_id", entry.ID),
			slog.String("total_debit", entry.TotalDebit().String()),
			slog.String("total_credit", entry.TotalCredit().String()))
	}
	s.LogInfo(ctx, "Journal entry posted",
		slog.Int64("entry_id", entry.ID),
		slog.String("template", string(req.Template)),
		slog.Int("line_count", len(entry.Lines)))
	return entry, nil
}

// buildLines applies the fixed debit/credit shape of the template.
func (s *postingService) buildLines(req domain.PostingRequest) ([]domain.TransactionLine, error) {
	switch req.Template {
	case domain.TemplateVendorInvoiceConsumable:
		return s.roleLegs(req, domain.RoleConsumablesExpense, domain.RoleAccountsPayable)
	case domain.TemplateVendorInvoiceInventory:
		return s.roleLegs(req, domain.RoleInventory, domain.RoleAccountsPayable)
	case domain.TemplateSalesInvoice:
		return s.roleLegs(req, domain.RoleAccountsReceivable, domain.RoleSalesRevenue)
	case domain.TemplateVendorPayment:
		payable, err := s.roles.Account(domain.RoleAccountsPayable)
		if err != nil {
			return nil, err
		}
		if req.CreditAccountID == nil {
			return nil, apperrors.NewValidationError("payment requires a disbursement account")
		}
		if *req.CreditAccountID == payable.ID {
			return nil, apperrors.NewValidationError("payment cannot be disbursed from the accounts payable account")
		}
		return twoLegs(req.Amount, payable.ID, *req.CreditAccountID)
	case domain.TemplateDailyExpense:
		if req.DebitAccountID == nil || req.CreditAccountID == nil {
			return nil, apperrors.NewValidationError("daily expense requires both an expense and a credit account")
		}
		if *req.DebitAccountID == *req.CreditAccountID {
			return nil, apperrors.NewValidationError("expense and credit account must differ")
		}
		return twoLegs(req.Amount, *req.DebitAccountID, *req.CreditAccountID)
	case domain.TemplateOpeningBalance:
		equity, err := s.roles.Account(domain.RoleOpeningBalanceEquity)
		if err != nil {
			return nil, err
		}
		switch {
		case req.DebitAccountID != nil && req.CreditAccountID == nil && *req.DebitAccountID != equity.ID:
			return twoLegs(req.Amount, *req.DebitAccountID, equity.ID)
		case req.CreditAccountID != nil && req.DebitAccountID == nil && *req.CreditAccountID != equity.ID:
			return twoLegs(req.Amount, equity.ID, *req.CreditAccountID)
		}
		return nil, apperrors.NewValidationError("opening balance needs exactly one account other than the opening balance equity account")
	case domain.TemplateManualAdjustment:
		lines := make([]domain.TransactionLine, len(req.Lines))
		for i, l := range req.Lines {
			lines[i] = domain.TransactionLine{AccountID: l.AccountID, Debit: l.Debit, Credit: l.Credit}
		}
		return lines, nil
	default:
		return nil, apperrors.NewValidationError("unknown posting template '%s'", req.Template)
	}
}

func (s *postingService) roleLegs(req domain.PostingRequest, debitRole, creditRole domain.AccountRole) ([]domain.TransactionLine, error) {
	debit, err := s.roles.Account(debitRole)
	if err != nil {
		return nil, err
	}
	credit, err := s.roles.Account(creditRole)
	if err != nil {
		return nil, err
	}
	return twoLegs(req.Amount, debit.ID, credit.ID)
}

func twoLegs(amount decimal.Decimal, debitAccountID, creditAccountID int64) ([]domain.TransactionLine, error) {
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount must be greater than zero, got %s", amount.String())
	}
	return []domain.TransactionLine{
		domain.DebitLine(debitAccountID, amount),
		domain.CreditLine(creditAccountID, amount),
	}, nil
}

// Unwind implements portssvc.PostingSvc.
func (s *postingService) Unwind(ctx context.Context, repos portsrepo.Repositories, entryID *int64) error {
	if entryID == nil {
		s.LogDebug(ctx, "Nothing to unwind, document has no journal entry")
		return nil
	}
	if err := repos.Ledger().DeleteEntry(ctx, *entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Journal entry already absent", slog.Int64("entry_id", *entryID))
			return nil
		}
		s.LogError(ctx, err, "Failed to unwind journal entry", slog.Int64("entry_id", *entryID))
		return fmt.Errorf("failed to unwind journal entry %d: %w", *entryID, err)
	}
	s.LogInfo(ctx, "Journal entry unwound", slog.Int64("entry_id", *entryID))
	return nil
}

// PostEntry implements portssvc.PostingSvc.
func (s *postingService) PostEntry(ctx context.Context, req domain.PostingRequest) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		entry, err = s.Post(ctx, repos, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UnwindEntry implements portssvc.PostingSvc.
func (s *postingService) UnwindEntry(ctx context.Context, entryID *int64) error {
	return s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		return s.Unwind(ctx, repos, entryID)
	})
}

// GetEntry implements portssvc.JournalReaderSvc.
func (s *postingService) GetEntry(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	var entry *domain.JournalEntry
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		entry, err = repos.Ledger().GetEntry(ctx, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries implements portssvc.JournalReaderSvc.
func (s *postingService) ListEntries(ctx context.Context, params domain.ListParams) ([]domain.JournalEntry, *string, error) {
	params.Limit = pagination.NormalizeLimit(params.Limit)
	var (
		entries   []domain.JournalEntry
		nextToken *string
	)
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		entries, nextToken, err = repos.Ledger().ListEntries(ctx, params)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return entries, nextToken, nil
}
