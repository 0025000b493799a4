package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	ID          int64     `db:"id"`
	EntryDate   time.Time `db:"entry_date"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// TransactionLine is a row of the transaction_lines table.
// Exactly one of Debit and Credit is non-zero.
type TransactionLine struct {
	ID             int64           `db:"id"`
	JournalEntryID int64           `db:"journal_entry_id"`
	AccountID      int64           `db:"account_id"`
	Debit          decimal.Decimal `db:"debit"`
	Credit         decimal.Decimal `db:"credit"`
}
