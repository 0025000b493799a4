package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	portssvc "github.com/Yousifhashim249/ERP-project/internal/core/ports/services"
	"github.com/Yousifhashim249/ERP-project/internal/core/services"
	"github.com/Yousifhashim249/ERP-project/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testChart is a flat chart holding every role account plus a few extras.
var testChart = []struct {
	code, name string
	typ        domain.AccountType
}{
	{"1100", "Cash", domain.Asset},
	{"1110", "Bank", domain.Asset},
	{"1200", "Accounts Receivable", domain.Asset},
	{"1300", "Inventory", domain.Asset},
	{"2100", "Accounts Payable", domain.Liability},
	{"3900", "Opening Balance Equity", domain.Equity},
	{"4100", "Sales Revenue", domain.Revenue},
	{"5100", "Consumables", domain.Expense},
	{"5200", "Rent", domain.Expense},
}

// ledgerFixture wires the real services to an in-memory store seeded with testChart.
type ledgerFixture struct {
	ctx      context.Context
	store    *memStore
	roles    *services.RoleBook
	services *portssvc.ServiceContainer
	ids      map[string]int64
}

func newLedgerFixture(t *testing.T, allowUnbalanced bool) *ledgerFixture {
	t.Helper()
	store := newMemStore()
	ids := make(map[string]int64, len(testChart))
	for _, a := range testChart {
		ids[a.code] = store.addAccount(a.code, a.name, a.typ, nil).ID
	}

	cfg := &config.Config{
		RoleAccounts:               config.DefaultRoleAccounts,
		AllowUnbalancedAdjustments: allowUnbalanced,
	}
	container, roles := services.NewServiceContainer(cfg, store)
	ctx := context.Background()
	require.NoError(t, roles.Resolve(ctx, container.Account))

	return &ledgerFixture{ctx: ctx, store: store, roles: roles, services: container, ids: ids}
}

func (f *ledgerFixture) id(code string) int64 {
	id, ok := f.ids[code]
	if !ok {
		panic("unknown account code " + code)
	}
	return id
}

func (f *ledgerFixture) balance(t *testing.T, code string) decimal.Decimal {
	t.Helper()
	balance, err := f.services.Account.Balance(f.ctx, f.id(code))
	require.NoError(t, err)
	return balance
}

// openingBalance posts amount on the normal side of the account with the given code.
func (f *ledgerFixture) openingBalance(t *testing.T, code string, amount string) {
	t.Helper()
	id := f.id(code)
	_, err := f.services.Posting.PostEntry(f.ctx, domain.PostingRequest{
		Template:       domain.TemplateOpeningBalance,
		Date:           date("2024-01-01"),
		Amount:         money(amount),
		DebitAccountID: &id,
	})
	require.NoError(t, err)
}

func (f *ledgerFixture) entryCount() int {
	return len(f.store.snapshot().entries)
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(v int64) *int64 {
	return &v
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, money(want).StringFixed(2), got.StringFixed(2), msgAndArgs...)
}
