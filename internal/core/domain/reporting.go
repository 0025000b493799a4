package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one line of the ledger view with the account's running
// balance (raw debit minus credit) as of that line.
type LedgerRow struct {
	LineDetail
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// TrialBalance is the full report with grand totals, which must be equal on a healthy ledger.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AccountAmount represents an account with its net amount for financial reports
type AccountAmount struct {
	AccountID int64           `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

type IncomeStatement struct {
	Revenue         decimal.Decimal `json:"revenue"`
	Expense         decimal.Decimal `json:"expense"`
	NetIncome       decimal.Decimal `json:"netIncome"`
	RevenueAccounts []AccountAmount `json:"revenueAccounts"`
	ExpenseAccounts []AccountAmount `json:"expenseAccounts"`
}

type BalanceSheet struct {
	Assets            decimal.Decimal `json:"assets"`
	Liabilities       decimal.Decimal `json:"liabilities"`
	Equity            decimal.Decimal `json:"equity"`
	AssetAccounts     []AccountAmount `json:"assetAccounts"`
	LiabilityAccounts []AccountAmount `json:"liabilityAccounts"`
	EquityAccounts    []AccountAmount `json:"equityAccounts"`
}

// ExpenseAnalysisRow is the net spend of one expense account in one calendar month.
type ExpenseAnalysisRow struct {
	AccountID   int64           `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Month       time.Time       `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
}

type ExpenseAnalysis struct {
	Rows  []ExpenseAnalysisRow `json:"rows"`
	Total decimal.Decimal      `json:"total"`
}
