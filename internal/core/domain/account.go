package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every valid account type in statement order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// NormalSide returns the side on which balances of this type are reported as positive.
func (t AccountType) NormalSide() Side {
	switch t {
	case Asset, Expense:
		return DebitSide
	default:
		return CreditSide
	}
}

// Side is either the debit or the credit column of a ledger.
type Side string

const (
	DebitSide  Side = "DEBIT"
	CreditSide Side = "CREDIT"
)

// Account is a node in the chart of accounts. Its balance is never stored;
// it is derived from the transaction lines that reference it.
type Account struct {
	ID        int64       `json:"id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	ParentID  *int64      `json:"parentID,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// AccountTotals is an account together with the raw sums of its lines.
type AccountTotals struct {
	Account
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// AccountBalance is an account with its balance on the normal side of its type.
type AccountBalance struct {
	Account
	Balance decimal.Decimal `json:"balance"`
}

// AccountUpdate lists the fields an update may change. Nil fields are left untouched.
type AccountUpdate struct {
	Code        *string
	Name        *string
	Type        *AccountType
	ParentID    *int64
	ClearParent bool
}

// Apply copies the set fields of u onto a.
func (u AccountUpdate) Apply(a *Account) {
	if u.Code != nil {
		a.Code = *u.Code
	}
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Type != nil {
		a.Type = *u.Type
	}
	if u.ClearParent {
		a.ParentID = nil
	} else if u.ParentID != nil {
		parent := *u.ParentID
		a.ParentID = &parent
	}
}
