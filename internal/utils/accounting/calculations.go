package accounting

import (
	"fmt"

	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the maximum absolute difference between total debits
// and total credits accepted for a journal entry. Amounts are two-place
// currency decimals, so anything below one hundredth of a unit is rounding
// noise rather than an imbalance.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// SumDebitsCredits totals the debit and credit sides of a set of journal
// entry lines.
func SumDebitsCredits(lines []domain.JournalEntryLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	return debits, credits
}

// ValidateEntryBalance checks the core double-entry invariant: for every
// journal entry, sum(Debit) equals sum(Credit) within BalanceTolerance.
// It also rejects lines that set both or neither of Debit/Credit, or carry
// negative amounts, since those would make the sums meaningless.
func ValidateEntryBalance(lines []domain.JournalEntryLine) error {
	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line for account %s has a negative amount", apperrors.ErrValidation, line.AccountID)
		}
		debitSet := line.Debit.IsPositive()
		creditSet := line.Credit.IsPositive()
		if debitSet == creditSet {
			return fmt.Errorf("%w: line for account %s must carry exactly one of debit or credit", apperrors.ErrValidation, line.AccountID)
		}
	}

	debits, credits := SumDebitsCredits(lines)
	if debits.Sub(credits).Abs().GreaterThanOrEqual(BalanceTolerance) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}
