package services

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations on the chart of accounts
type AccountReaderSvc interface {
	// GetAccount retrieves an account by ID
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// Resolve finds an account by code, falling back to name
	Resolve(ctx context.Context, codeOrName string) (*domain.Account, error)

	// ListAccounts lists every account with its balance on its normal side
	ListAccounts(ctx context.Context) ([]domain.AccountBalance, error)

	// Balance derives an account's signed balance from its lines
	Balance(ctx context.Context, accountID int64) (decimal.Decimal, error)

	// Children lists the direct children of an account. Their balances are not rolled up.
	Children(ctx context.Context, accountID int64) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations on the chart of accounts
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
