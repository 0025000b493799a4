package accounting

import (
	"fmt"

	"github.com/Yousifhashim249/ERP-project/internal/apperrors"
	"github.com/Yousifhashim249/ERP-project/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedBalance applies the normal-side convention of an account type to raw totals.
// This is used in both services and repositories to ensure consistent accounting logic.
func SignedBalance(accountType domain.AccountType, totalDebit, totalCredit decimal.Decimal) (decimal.Decimal, error) {
	// ASSET/EXPENSE -> debit - credit
	// LIABILITY/EQUITY/REVENUE -> credit - debit
	switch accountType {
	case domain.Asset, domain.Expense:
		return totalDebit.Sub(totalCredit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return totalCredit.Sub(totalDebit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// AmountScale is the number of decimal places the ledger stores.
const AmountScale = 2

// QuantityScale is the number of decimal places stored for document quantities.
const QuantityScale = 4

// ValidateLine rejects negative amounts, lines that carry both a debit and a
// credit, lines that move nothing and amounts finer than AmountScale.
func ValidateLine(line domain.TransactionLine) error {
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return apperrors.NewValidationError("line for account %d has a negative amount", line.AccountID)
	}
	if line.Debit.IsPositive() && line.Credit.IsPositive() {
		return apperrors.NewValidationError("line for account %d is both debit and credit", line.AccountID)
	}
	if line.Debit.IsZero() && line.Credit.IsZero() {
		return apperrors.NewValidationError("line for account %d has no amount", line.AccountID)
	}
	if !IsCurrencyAmount(line.Debit) || !IsCurrencyAmount(line.Credit) {
		return apperrors.NewValidationError("line for account %d has more than %d decimal places", line.AccountID, AmountScale)
	}
	return nil
}

// ValidateEntryLines checks every line and, when requireBalanced is set,
// that the debits equal the credits.
func ValidateEntryLines(lines []domain.TransactionLine, requireBalanced bool) error {
	if len(lines) < 2 {
		return apperrors.NewValidationError("journal entry must have at least two lines, got %d", len(lines))
	}

	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, line := range lines {
		if err := ValidateLine(line); err != nil {
			return err
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if requireBalanced && !totalDebit.Equal(totalCredit) {
		return apperrors.NewUnbalancedEntryError(totalDebit, totalCredit)
	}
	return nil
}

// RunningBalances folds lines, already in ledger order, into rows carrying
// each account's raw debit-minus-credit balance as of that line.
func RunningBalances(lines []domain.LineDetail) []domain.LedgerRow {
	running := make(map[int64]decimal.Decimal)
	rows := make([]domain.LedgerRow, 0, len(lines))
	for _, line := range lines {
		balance := running[line.AccountID].Add(line.Debit).Sub(line.Credit)
		running[line.AccountID] = balance
		rows = append(rows, domain.LedgerRow{LineDetail: line, RunningBalance: balance})
	}
	return rows
}

// IsCurrencyAmount reports whether d fits the ledger's scale without rounding.
func IsCurrencyAmount(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountScale))
}

// IsQuantity reports whether d fits QuantityScale without rounding.
func IsQuantity(d decimal.Decimal) bool {
	return d.Equal(d.Round(QuantityScale))
}
