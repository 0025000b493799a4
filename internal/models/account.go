package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
type Account struct {
	ID        int64         `db:"id"`
	Code      string        `db:"code"`
	Name      string        `db:"name"`
	Type      string        `db:"type"`
	ParentID  sql.NullInt64 `db:"parent_id"` // Nullable
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

// AccountTotals is an account row joined with the sums of its lines.
type AccountTotals struct {
	Account
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
}
