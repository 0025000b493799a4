package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
)

// RoleBook maps each well-known account role to a concrete account. The
// mapping is resolved once at startup so posting never looks accounts up by name.
type RoleBook struct {
	mu       sync.RWMutex
	mapping  map[domain.AccountRole]string
	accounts map[domain.AccountRole]domain.Account
}

// NewRoleBook creates an unresolved role book from a role -> code-or-name mapping.
func NewRoleBook(mapping map[domain.AccountRole]string) *RoleBook {
	m := make(map[domain.AccountRole]string, len(mapping))
	for role, ref := range mapping {
		m[role] = strings.TrimSpace(ref)
	}
	return &RoleBook{mapping: m, accounts: make(map[domain.AccountRole]domain.Account)}
}

// Resolve looks every role up through the account directory. It fails with
// ErrConfiguration naming each role that is unmapped or points at no account;
// roles that did resolve stay usable.
func (b *RoleBook) Resolve(ctx context.Context, directory portssvc.AccountReaderSvc) error {
	resolved := make(map[domain.AccountRole]domain.Account, len(domain.AccountRoles))
	var problems []string

	for _, role := range domain.AccountRoles {
		ref := b.mapping[role]
		if ref == "" {
			problems = append(problems, string(role)+" is not mapped")
			continue
		}
		account, err := directory.Resolve(ctx, ref)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				problems = append(problems, string(role)+" -> '"+ref+"' does not exist")
				continue
			}
			return err
		}
		resolved[role] = *account
	}

	b.mu.Lock()
	b.accounts = resolved
	b.mu.Unlock()

	if len(problems) > 0 {
		sort.Strings(problems)
		return apperrors.NewConfigurationError("required accounts missing from chart of accounts: %s", strings.Join(problems, "; "))
	}

	for role, account := range resolved {
		slog.Debug("Resolved account role", slog.String("role", string(role)), slog.Int64("account_id", account.ID), slog.String("code", account.Code))
	}
	return nil
}

// Account returns the account bound to role, or ErrConfiguration when it is unresolved.
func (b *RoleBook) Account(role domain.AccountRole) (domain.Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	account, ok := b.accounts[role]
	if !ok {
		ref := b.mapping[role]
		if ref == "" {
			return domain.Account{}, apperrors.NewConfigurationError("account role %s is not mapped", role)
		}
		return domain.Account{}, apperrors.NewConfigurationError("account role %s ('%s') is not in the chart of accounts", role, ref)
	}
	return account, nil
}

// RoleOf reports which role, if any, accountID is bound to.
func (b *RoleBook) RoleOf(accountID int64) (domain.AccountRole, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for role, account := range b.accounts {
		if account.ID == accountID {
			return role, true
		}
	}
	return "", false
}
