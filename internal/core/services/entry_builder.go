package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	"github.com/openbooks-app/openbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// BuildLine is a candidate journal entry line. Exactly one of Debit/Credit
// must be positive.
type BuildLine struct {
	AccountID   string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// BuildEntryInput carries everything needed to assemble a journal entry.
type BuildEntryInput struct {
	Description     string
	TransactionDate time.Time
	Lines           []BuildLine
}

// EntryBuilder assembles balanced journal entries. It is the single
// chokepoint enforcing the debits == credits invariant: callers are expected
// to pass already-balanced lines, but the check runs here regardless.
type EntryBuilder struct{}

// NewEntryBuilder creates a new EntryBuilder.
func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{}
}

// BuildEntry validates the candidate lines and produces a JournalEntry ready
// for submission, with its lines in the order supplied.
func (b *EntryBuilder) BuildEntry(input BuildEntryInput, creatorUserID string) (domain.JournalEntry, []domain.JournalEntryLine, error) {
	if len(input.Lines) < 2 {
		return domain.JournalEntry{}, nil, fmt.Errorf("%w: journal entry must have at least two lines", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	lines := make([]domain.JournalEntryLine, len(input.Lines))
	for i, candidate := range input.Lines {
		if candidate.AccountID == "" {
			return domain.JournalEntry{}, nil, fmt.Errorf("%w: journal entry line %d has no account", apperrors.ErrValidation, i+1)
		}
		lines[i] = domain.JournalEntryLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   candidate.AccountID,
			Debit:       candidate.Debit,
			Credit:      candidate.Credit,
			Description: candidate.Description,
			Position:    i,
		}
	}

	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return domain.JournalEntry{}, nil, err
	}

	transactionDate := input.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = now
	}

	entry := domain.JournalEntry{
		EntryID:         entryID,
		TransactionDate: transactionDate,
		Description:     input.Description,
		Status:          domain.EntryPosted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	return entry, lines, nil
}

// MirrorLines builds the candidate lines of a reversing entry: same accounts
// and descriptions, debit and credit swapped per line. Swapping preserves
// balance by construction, but BuildEntry still re-checks it.
func (b *EntryBuilder) MirrorLines(original []domain.JournalEntryLine) []BuildLine {
	mirrored := make([]BuildLine, len(original))
	for i, line := range original {
		mirrored[i] = BuildLine{
			AccountID:   line.AccountID,
			Debit:       line.Credit,
			Credit:      line.Debit,
			Description: line.Description,
		}
	}
	return mirrored
}
