package repositories

import (
	"context"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its unique code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountByName retrieves the first account (lowest id) with the given name.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// ListAccounts retrieves every account ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListChildren retrieves the direct children of an account.
	ListChildren(ctx context.Context, parentID int64) ([]domain.Account, error)

	// AccountTotals sums the debit and credit columns of every line referencing the account.
	AccountTotals(ctx context.Context, accountID int64) (decimal.Decimal, decimal.Decimal, error)

	// ListAccountTotals returns every account with its raw line totals, zero when it has no lines.
	ListAccountTotals(ctx context.Context) ([]domain.AccountTotals, error)

	// CountLines counts the transaction lines referencing the account.
	CountLines(ctx context.Context, accountID int64) (int, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and sets its ID.
	SaveAccount(ctx context.Context, account *domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account row.
	DeleteAccount(ctx context.Context, accountID int64) error
}

// AccountRepository combines all account-related repository interfaces
type AccountRepository interface {
	AccountReader
	AccountWriter
}
