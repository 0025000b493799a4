package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portsrepo "github.com/Yousifhashim249/ERP-project/internal/core/ports/repositories"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
	"github.com/Yousifhashim249/ERP-project/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// accountService is the account directory: the chart of accounts and the
// balances derived from its lines. Child balances are not rolled up into parents.
type accountService struct {
	BaseService
	txManager portsrepo.TransactionManager
	posting   portssvc.PostingSvc
	roles     *RoleBook
}

// NewAccountService creates a new account service. posting is used only to
// record opening balances; roles protects role accounts from deletion.
func NewAccountService(txManager portsrepo.TransactionManager, posting portssvc.PostingSvc, roles *RoleBook) portssvc.AccountSvcFacade {
	return &accountService{
		txManager: txManager,
		posting:   posting,
		roles:     roles,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates an account and, for a positive opening balance, posts a
// balanced opening entry against the opening balance equity account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("unknown account type '%s'", req.Type)
	}
	var opening decimal.Decimal
	if req.OpeningBalance != nil {
		opening = *req.OpeningBalance
		if opening.IsNegative() {
			return nil, apperrors.NewValidationError("opening balance cannot be negative")
		}
	}
	openingDate, err := dto.ParseDate(req.OpeningDate, time.Now())
	if err != nil {
		return nil, apperrors.NewValidationError("%s", err.Error())
	}

	account := &domain.Account{
		Code:     strings.TrimSpace(req.Code),
		Name:     strings.TrimSpace(req.Name),
		Type:     req.Type,
		ParentID: req.ParentID,
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		if account.ParentID != nil {
			if _, err := repos.Accounts().FindAccountByID(ctx, *account.ParentID); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return apperrors.NewValidationError("parent account %d does not exist", *account.ParentID)
				}
				return err
			}
		}
		if err := repos.Accounts().SaveAccount(ctx, account); err != nil {
			return err
		}
		if !opening.IsPositive() {
			return nil
		}

		openingReq := domain.PostingRequest{
			Template:    domain.TemplateOpeningBalance,
			Date:        openingDate,
			Description: fmt.Sprintf("Opening balance for %s %s", account.Code, account.Name),
			Amount:      opening,
		}
		if account.Type.NormalSide() == domain.DebitSide {
			openingReq.DebitAccountID = &account.ID
		} else {
			openingReq.CreditAccountID = &account.ID
		}
		_, err := s.posting.Post(ctx, repos, openingReq)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create account", slog.String("code", account.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.Int64("account_id", account.ID), slog.String("code", account.Code))
	return account, nil
}

// GetAccount implements portssvc.AccountReaderSvc.
func (s *accountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	var account *domain.Account
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		account, err = repos.Accounts().FindAccountByID(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

// Resolve looks an account up by code first, then by name.
func (s *accountService) Resolve(ctx context.Context, codeOrName string) (*domain.Account, error) {
	ref := strings.TrimSpace(codeOrName)
	if ref == "" {
		return nil, apperrors.NewValidationError("account code or name is required")
	}

	var account *domain.Account
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		account, err = repos.Accounts().FindAccountByCode(ctx, ref)
		if errors.Is(err, apperrors.ErrNotFound) {
			account, err = repos.Accounts().FindAccountByName(ctx, ref)
		}
		return err
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("account '" + ref + "'")
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts implements portssvc.AccountReaderSvc.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.AccountBalance, error) {
	var totals []domain.AccountTotals
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		totals, err = repos.Accounts().ListAccountTotals(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	balances := make([]domain.AccountBalance, 0, len(totals))
	for _, t := range totals {
		balance, err := accounting.SignedBalance(t.Type, t.TotalDebit, t.TotalCredit)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", t.ID, err)
		}
		balances = append(balances, domain.AccountBalance{Account: t.Account, Balance: balance})
	}
	return balances, nil
}

// Balance implements portssvc.AccountReaderSvc.
func (s *accountService) Balance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var (
		account       *domain.Account
		debit, credit decimal.Decimal
	)
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		if account, err = repos.Accounts().FindAccountByID(ctx, accountID); err != nil {
			return err
		}
		debit, credit, err = repos.Accounts().AccountTotals(ctx, accountID)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.SignedBalance(account.Type, debit, credit)
}

// Children implements portssvc.AccountReaderSvc.
func (s *accountService) Children(ctx context.Context, accountID int64) ([]domain.Account, error) {
	var children []domain.Account
	err := s.txManager.WithinReadOnlyTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		if _, err := repos.Accounts().FindAccountByID(ctx, accountID); err != nil {
			return err
		}
		var err error
		children, err = repos.Accounts().ListChildren(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return children, nil
}

// UpdateAccount applies an explicit field-by-field update. The parent may not
// create a cycle, and the type of an account with posted lines is fixed.
func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.ClearParent && req.ParentID != nil {
		return nil, apperrors.NewValidationError("parentID and clearParent are mutually exclusive")
	}
	update := req.ToDomain()

	var account *domain.Account
	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		var err error
		account, err = repos.Accounts().FindAccountByID(ctx, accountID)
		if err != nil {
			return err
		}

		if update.ParentID != nil {
			if err := s.checkParent(ctx, repos, accountID, *update.ParentID); err != nil {
				return err
			}
		}
		if update.Type != nil && *update.Type != account.Type {
			count, err := repos.Accounts().CountLines(ctx, accountID)
			if err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: account %d has %d transaction lines, its type cannot change", apperrors.ErrConflict, accountID, count)
			}
		}

		update.Apply(account)
		account.Code = strings.TrimSpace(account.Code)
		account.Name = strings.TrimSpace(account.Name)
		return repos.Accounts().UpdateAccount(ctx, *account)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.Int64("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.Int64("account_id", accountID))
	return account, nil
}

// checkParent walks up from parentID and rejects the move if it reaches accountID.
func (s *accountService) checkParent(ctx context.Context, repos portsrepo.Repositories, accountID, parentID int64) error {
	current := &parentID
	for current != nil {
		if *current == accountID {
			return apperrors.NewValidationError("account %d cannot be its own ancestor", accountID)
		}
		parent, err := repos.Accounts().FindAccountByID(ctx, *current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewValidationError("parent account %d does not exist", *current)
			}
			return err
		}
		current = parent.ParentID
	}
	return nil
}

// DeleteAccount removes an account that has no lines, no children and no role.
func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	if s.roles != nil {
		if role, ok := s.roles.RoleOf(accountID); ok {
			return fmt.Errorf("%w: account %d is mapped to role %s", apperrors.ErrConflict, accountID, role)
		}
	}

	err := s.txManager.WithinTx(ctx, func(ctx context.Context, repos portsrepo.Repositories) error {
		if _, err := repos.Accounts().FindAccountByID(ctx, accountID); err != nil {
			return err
		}
		count, err := repos.Accounts().CountLines(ctx, accountID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: account %d has %d transaction lines", apperrors.ErrConflict, accountID, count)
		}
		children, err := repos.Accounts().ListChildren(ctx, accountID)
		if err != nil {
			return err
		}
		if len(children) > 0 {
			return fmt.Errorf("%w: account %d has %d child accounts", apperrors.ErrConflict, accountID, len(children))
		}
		return repos.Accounts().DeleteAccount(ctx, accountID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.Int64("account_id", accountID))
	return nil
}
