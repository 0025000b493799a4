package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one balanced accounting event. Lines are ordered by id.
type JournalEntry struct {
	ID          int64             `json:"id"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Lines       []TransactionLine `json:"lines"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// TransactionLine is a single debit or credit movement against one account.
type TransactionLine struct {
	ID             int64           `json:"id"`
	JournalEntryID int64           `json:"journalEntryID"`
	AccountID      int64           `json:"accountID"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
}

// DebitLine builds a line that debits accountID by amount.
func DebitLine(accountID int64, amount decimal.Decimal) TransactionLine {
	return TransactionLine{AccountID: accountID, Debit: amount, Credit: decimal.Zero}
}

// CreditLine builds a line that credits accountID by amount.
func CreditLine(accountID int64, amount decimal.Decimal) TransactionLine {
	return TransactionLine{AccountID: accountID, Debit: decimal.Zero, Credit: amount}
}

// TotalDebit sums the debit column of the entry.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit column of the entry.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether total debit equals total credit.
func (e JournalEntry) IsBalanced() bool {
	return e.TotalDebit().Equal(e.TotalCredit())
}

// LineDetail is a transaction line joined with its entry and account, as listed for reporting.
type LineDetail struct {
	TransactionLine
	EntryDate        time.Time   `json:"entryDate"`
	EntryDescription string      `json:"entryDescription"`
	AccountCode      string      `json:"accountCode"`
	AccountName      string      `json:"accountName"`
	AccountType      AccountType `json:"accountType"`
}

// LineFilter narrows ListLines. Zero values mean no restriction.
type LineFilter struct {
	AccountID      *int64
	JournalEntryID *int64
	From           *time.Time
	To             *time.Time
}

// ListParams pages through a list ordered newest first. VendorID and
// DepartmentID narrow document lists; nil means no restriction.
type ListParams struct {
	Limit        int
	NextToken    *string
	VendorID     *int64
	DepartmentID *int64
}
