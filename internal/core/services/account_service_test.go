package services_test

import (
	"errors"
	"testing"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/Yousifhashim249/ERP-project/internal/dto"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	f *ledgerFixture
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.f = newLedgerFixture(s.T(), false)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) create(req dto.CreateAccountRequest) *domain.Account {
	account, err := s.f.services.Account.CreateAccount(s.f.ctx, req)
	s.Require().NoError(err)
	return account
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	account := s.create(dto.CreateAccountRequest{Code: " 1120 ", Name: "Petty Cash ", Type: domain.Asset})

	s.NotZero(account.ID)
	s.Equal("1120", account.Code)
	s.Equal("Petty Cash", account.Name)
	s.Zero(s.f.entryCount(), "no opening balance, no entry")

	got, err := s.f.services.Account.GetAccount(s.f.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal(account.Code, got.Code)
}

func (s *AccountServiceTestSuite) TestCreateAccount_OpeningBalance() {
	f := s.f
	asset := s.create(dto.CreateAccountRequest{
		Code:           "1150",
		Name:           "Savings",
		Type:           domain.Asset,
		OpeningBalance: moneyPtr("1000"),
		OpeningDate:    strPtr("2024-01-01"),
	})
	liability := s.create(dto.CreateAccountRequest{
		Code:           "2200",
		Name:           "Bank Loan",
		Type:           domain.Liability,
		OpeningBalance: moneyPtr("400"),
	})

	assetBalance, err := f.services.Account.Balance(f.ctx, asset.ID)
	s.Require().NoError(err)
	assertAmount(s.T(), "1000", assetBalance)

	liabilityBalance, err := f.services.Account.Balance(f.ctx, liability.ID)
	s.Require().NoError(err)
	assertAmount(s.T(), "400", liabilityBalance)

	// 3900 was debited 400 and credited 1000.
	assertAmount(s.T(), "600", f.balance(s.T(), "3900"))
	s.Equal(2, f.entryCount())

	tb, err := f.services.Reporting.TrialBalance(f.ctx)
	s.Require().NoError(err)
	s.True(tb.TotalDebit.Equal(tb.TotalCredit))

	lines, err := f.services.Reporting.AccountLedger(f.ctx, asset.ID)
	s.Require().NoError(err)
	s.Require().Len(lines, 1)
	s.Equal(date("2024-01-01"), lines[0].EntryDate)
	s.Contains(lines[0].EntryDescription, "1150 Savings")
}

func (s *AccountServiceTestSuite) TestCreateAccount_Rejections() {
	f := s.f
	tests := []struct {
		name    string
		req     dto.CreateAccountRequest
		wantErr error
	}{
		{"missing code", dto.CreateAccountRequest{Name: "X", Type: domain.Asset}, apperrors.ErrValidation},
		{"unknown type", dto.CreateAccountRequest{Code: "9000", Name: "X", Type: "INCOME"}, apperrors.ErrValidation},
		{"negative opening balance", dto.CreateAccountRequest{Code: "9000", Name: "X", Type: domain.Asset, OpeningBalance: moneyPtr("-1")}, apperrors.ErrValidation},
		{"sub-cent opening balance", dto.CreateAccountRequest{Code: "9000", Name: "X", Type: domain.Asset, OpeningBalance: moneyPtr("1.001")}, apperrors.ErrValidation},
		{"bad opening date", dto.CreateAccountRequest{Code: "9000", Name: "X", Type: domain.Asset, OpeningDate: strPtr("01/02/2024")}, apperrors.ErrValidation},
		{"missing parent", dto.CreateAccountRequest{Code: "9000", Name: "X", Type: domain.Asset, ParentID: int64Ptr(9999)}, apperrors.ErrValidation},
		{"duplicate code", dto.CreateAccountRequest{Code: "1100", Name: "Other Cash", Type: domain.Asset}, apperrors.ErrDuplicate},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := f.services.Account.CreateAccount(f.ctx, tt.req)
			s.ErrorIs(err, tt.wantErr)
			_, err = f.services.Account.Resolve(f.ctx, "9000")
			s.ErrorIs(err, apperrors.ErrNotFound, "nothing may be written")
		})
	}
	s.Zero(f.entryCount())
}

func (s *AccountServiceTestSuite) TestCreateAccount_OpeningPostFailureRollsBack() {
	f := s.f
	f.store.failOn("CreateEntry", apperrors.NewTransactionFailure("insert journal entry", errors.New("disk full")))

	_, err := f.services.Account.CreateAccount(f.ctx, dto.CreateAccountRequest{
		Code: "1150", Name: "Savings", Type: domain.Asset, OpeningBalance: moneyPtr("10"),
	})
	s.ErrorIs(err, apperrors.ErrTransactionFailure)

	_, err = f.services.Account.Resolve(f.ctx, "1150")
	s.ErrorIs(err, apperrors.ErrNotFound, "the account must roll back with its opening entry")
}

func (s *AccountServiceTestSuite) TestResolve() {
	f := s.f

	byCode, err := f.services.Account.Resolve(f.ctx, "2100")
	s.Require().NoError(err)
	s.Equal(f.id("2100"), byCode.ID)

	byName, err := f.services.Account.Resolve(f.ctx, " Accounts Payable ")
	s.Require().NoError(err)
	s.Equal(f.id("2100"), byName.ID)

	// A code wins over a name that happens to look like it.
	s.create(dto.CreateAccountRequest{Code: "7000", Name: "1100", Type: domain.Expense})
	byCode, err = f.services.Account.Resolve(f.ctx, "1100")
	s.Require().NoError(err)
	s.Equal(f.id("1100"), byCode.ID)

	_, err = f.services.Account.Resolve(f.ctx, "Nope")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = f.services.Account.Resolve(f.ctx, "  ")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestBalance_SignConvention() {
	f := s.f
	_, err := f.services.Documents.CreateVendorInvoice(f.ctx, dto.CreateVendorInvoiceRequest{
		VendorID: 1,
		Kind:     domain.VendorInvoiceConsumable,
		Lines:    []dto.VendorInvoiceLineRequest{{ProductName: "Paper", Quantity: money("10"), UnitPrice: money("100")}},
	})
	s.Require().NoError(err)

	// Both sides of the posting read as positive on their normal side.
	assertAmount(s.T(), "1000", f.balance(s.T(), "2100"))
	assertAmount(s.T(), "1000", f.balance(s.T(), "5100"))

	_, err = f.services.Account.Balance(f.ctx, 9999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestListAccounts() {
	f := s.f
	f.openingBalance(s.T(), "1100", "250")

	balances, err := f.services.Account.ListAccounts(f.ctx)
	s.Require().NoError(err)
	s.Len(balances, len(testChart))

	byCode := map[string]domain.AccountBalance{}
	for i, b := range balances {
		byCode[b.Code] = b
		if i > 0 {
			s.Less(balances[i-1].Code, b.Code, "accounts are ordered by code")
		}
	}
	assertAmount(s.T(), "250", byCode["1100"].Balance)
	assertAmount(s.T(), "250", byCode["3900"].Balance)
	assertAmount(s.T(), "0", byCode["5200"].Balance)
}

func (s *AccountServiceTestSuite) TestChildren() {
	f := s.f
	parent := s.create(dto.CreateAccountRequest{Code: "6000", Name: "Overheads", Type: domain.Expense})
	s.create(dto.CreateAccountRequest{Code: "6200", Name: "Insurance", Type: domain.Expense, ParentID: &parent.ID})
	s.create(dto.CreateAccountRequest{Code: "6100", Name: "Cleaning", Type: domain.Expense, ParentID: &parent.ID})

	children, err := f.services.Account.Children(f.ctx, parent.ID)
	s.Require().NoError(err)
	s.Require().Len(children, 2)
	s.Equal("6100", children[0].Code)
	s.Equal("6200", children[1].Code)

	_, err = f.services.Account.Children(f.ctx, 9999)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestUpdateAccount() {
	f := s.f
	root := s.create(dto.CreateAccountRequest{Code: "6000", Name: "Overheads", Type: domain.Expense})
	child := s.create(dto.CreateAccountRequest{Code: "6100", Name: "Cleaning", Type: domain.Expense, ParentID: &root.ID})
	grandchild := s.create(dto.CreateAccountRequest{Code: "6110", Name: "Windows", Type: domain.Expense, ParentID: &child.ID})

	s.Run("rename", func() {
		updated, err := f.services.Account.UpdateAccount(f.ctx, child.ID, dto.UpdateAccountRequest{Name: strPtr(" Cleaning Services ")})
		s.Require().NoError(err)
		s.Equal("Cleaning Services", updated.Name)
		s.Equal("6100", updated.Code)
		s.Require().NotNil(updated.ParentID)
		s.Equal(root.ID, *updated.ParentID)
	})

	s.Run("parent cycle", func() {
		_, err := f.services.Account.UpdateAccount(f.ctx, root.ID, dto.UpdateAccountRequest{ParentID: &grandchild.ID})
		s.ErrorIs(err, apperrors.ErrValidation)
		_, err = f.services.Account.UpdateAccount(f.ctx, root.ID, dto.UpdateAccountRequest{ParentID: &root.ID})
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.Run("missing parent", func() {
		_, err := f.services.Account.UpdateAccount(f.ctx, child.ID, dto.UpdateAccountRequest{ParentID: int64Ptr(9999)})
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.Run("parent and clear together", func() {
		_, err := f.services.Account.UpdateAccount(f.ctx, child.ID, dto.UpdateAccountRequest{ParentID: &root.ID, ClearParent: true})
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.Run("clear parent", func() {
		updated, err := f.services.Account.UpdateAccount(f.ctx, grandchild.ID, dto.UpdateAccountRequest{ClearParent: true})
		s.Require().NoError(err)
		s.Nil(updated.ParentID)
	})

	s.Run("type change without lines", func() {
		asset := domain.Asset
		updated, err := f.services.Account.UpdateAccount(f.ctx, grandchild.ID, dto.UpdateAccountRequest{Type: &asset})
		s.Require().NoError(err)
		s.Equal(domain.Asset, updated.Type)
	})

	s.Run("type change with lines", func() {
		f.openingBalance(s.T(), "1110", "10")
		liability := domain.Liability
		_, err := f.services.Account.UpdateAccount(f.ctx, f.id("1110"), dto.UpdateAccountRequest{Type: &liability})
		s.ErrorIs(err, apperrors.ErrConflict)
	})

	s.Run("duplicate code", func() {
		_, err := f.services.Account.UpdateAccount(f.ctx, child.ID, dto.UpdateAccountRequest{Code: strPtr("1100")})
		s.ErrorIs(err, apperrors.ErrDuplicate)
	})

	s.Run("unknown account", func() {
		_, err := f.services.Account.UpdateAccount(f.ctx, 9999, dto.UpdateAccountRequest{Name: strPtr("x")})
		s.ErrorIs(err, apperrors.ErrNotFound)
	})
}

func (s *AccountServiceTestSuite) TestDeleteAccount() {
	f := s.f

	s.Run("role account", func() {
		err := f.services.Account.DeleteAccount(f.ctx, f.id("2100"))
		s.ErrorIs(err, apperrors.ErrConflict)
	})

	s.Run("account with lines", func() {
		f.openingBalance(s.T(), "1110", "10")
		err := f.services.Account.DeleteAccount(f.ctx, f.id("1110"))
		s.ErrorIs(err, apperrors.ErrConflict)
	})

	s.Run("account with children", func() {
		parent := s.create(dto.CreateAccountRequest{Code: "6000", Name: "Overheads", Type: domain.Expense})
		s.create(dto.CreateAccountRequest{Code: "6100", Name: "Cleaning", Type: domain.Expense, ParentID: &parent.ID})
		err := f.services.Account.DeleteAccount(f.ctx, parent.ID)
		s.ErrorIs(err, apperrors.ErrConflict)
	})

	s.Run("unused account", func() {
		s.Require().NoError(f.services.Account.DeleteAccount(f.ctx, f.id("5200")))
		_, err := f.services.Account.GetAccount(f.ctx, f.id("5200"))
		s.ErrorIs(err, apperrors.ErrNotFound)
		s.ErrorIs(f.services.Account.DeleteAccount(f.ctx, f.id("5200")), apperrors.ErrNotFound)
	})
}
