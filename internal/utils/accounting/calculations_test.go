package accounting_test

import (
	"testing"

	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	"github.com/openbooks-app/openbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDebitsCredits(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{AccountID: "a", Debit: decimal.NewFromFloat(100.50)},
		{AccountID: "b", Credit: decimal.NewFromFloat(60.25)},
		{AccountID: "c", Credit: decimal.NewFromFloat(40.25)},
	}

	debits, credits := accounting.SumDebitsCredits(lines)

	assert.True(t, debits.Equal(decimal.NewFromFloat(100.50)))
	assert.True(t, credits.Equal(decimal.NewFromFloat(100.50)))
}

func TestValidateEntryBalance_Balanced(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{AccountID: "a", Debit: decimal.NewFromInt(1000)},
		{AccountID: "b", Credit: decimal.NewFromInt(600)},
		{AccountID: "c", Credit: decimal.NewFromInt(400)},
	}

	assert.NoError(t, accounting.ValidateEntryBalance(lines))
}

func TestValidateEntryBalance_WithinTolerance(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{AccountID: "a", Debit: decimal.NewFromFloat(100.009)},
		{AccountID: "b", Credit: decimal.NewFromInt(100)},
	}

	assert.NoError(t, accounting.ValidateEntryBalance(lines))
}

func TestValidateEntryBalance_AtTolerance(t *testing.T) {
	// Exactly 0.01 apart is already an imbalance.
	lines := []domain.JournalEntryLine{
		{AccountID: "a", Debit: decimal.NewFromFloat(100.01)},
		{AccountID: "b", Credit: decimal.NewFromInt(100)},
	}

	err := accounting.ValidateEntryBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
}

func TestValidateEntryBalance_Unbalanced(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{AccountID: "a", Debit: decimal.NewFromInt(1000)},
		{AccountID: "b", Credit: decimal.NewFromInt(999)},
	}

	err := accounting.ValidateEntryBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnbalanced)
	assert.Contains(t, err.Error(), "1000")
	assert.Contains(t, err.Error(), "999")
}

func TestValidateEntryBalance_NegativeAmount(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{AccountID: "a", Debit: decimal.NewFromInt(-100)},
		{AccountID: "b", Credit: decimal.NewFromInt(-100)},
	}

	err := accounting.ValidateEntryBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateEntryBalance_BothSidesSet(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{AccountID: "a", Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(100)},
		{AccountID: "b", Credit: decimal.NewFromInt(100)},
	}

	err := accounting.ValidateEntryBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestValidateEntryBalance_NeitherSideSet(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{AccountID: "a", Debit: decimal.NewFromInt(100)},
		{AccountID: "b"},
		{AccountID: "c", Credit: decimal.NewFromInt(100)},
	}

	err := accounting.ValidateEntryBalance(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
