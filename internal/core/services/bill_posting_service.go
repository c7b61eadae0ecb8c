package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/dto"
	"github.com/openbooks-app/openbooks_backend/internal/middleware"
)

// billPostingService orchestrates bill posting and reversal. A bill is the
// mirror of an invoice: credit Accounts Payable for the total, debit each
// line's expense account. Bill lines must carry their own expense account;
// there is no fallback.
type billPostingService struct {
	billRepo    portsrepo.BillRepositoryFacade
	journalRepo portsrepo.JournalEntryRepositoryFacade
	defaultsSvc portssvc.AccountDefaultsSvcFacade
	builder     *EntryBuilder
}

// NewBillPostingService creates a new BillPostingService.
func NewBillPostingService(
	billRepo portsrepo.BillRepositoryFacade,
	journalRepo portsrepo.JournalEntryRepositoryFacade,
	defaultsSvc portssvc.AccountDefaultsSvcFacade,
	builder *EntryBuilder,
) portssvc.BillPostingSvcFacade {
	return &billPostingService{
		billRepo:    billRepo,
		journalRepo: journalRepo,
		defaultsSvc: defaultsSvc,
		builder:     builder,
	}
}

var _ portssvc.BillPostingSvcFacade = (*billPostingService)(nil)

// PostBill converts an unposted bill into a balanced journal entry.
func (s *billPostingService) PostBill(ctx context.Context, billID string, actingUserID string) (*dto.PostBillResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch bill for posting", "bill_id", billID, "error", err)
		}
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}

	if bill.IsPosted() {
		return nil, fmt.Errorf("%w: bill %s is already posted to journal entry %s", apperrors.ErrAlreadyPosted, billID, *bill.JournalEntryID)
	}

	lines, err := s.billRepo.FindBillLines(ctx, billID)
	if err != nil {
		logger.Error("Failed to fetch bill lines", "bill_id", billID, "error", err)
		return nil, fmt.Errorf("failed to fetch lines for bill %s: %w", billID, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: bill %s has no lines", apperrors.ErrNoLines, billID)
	}

	defaults, err := s.defaultsSvc.GetAccountDefaults(ctx)
	if err != nil {
		return nil, err
	}
	apAccountID, err := RequireDefault(defaults, domain.AccountsPayable)
	if err != nil {
		return nil, err
	}

	buildLines := make([]BuildLine, 0, len(lines)+1)
	for i, line := range lines {
		if line.AccountID == "" {
			return nil, fmt.Errorf("%w: bill %s line %s (position %d) has no expense account", apperrors.ErrMissingLineAccount, billID, line.LineID, i+1)
		}
		buildLines = append(buildLines, BuildLine{
			AccountID:   line.AccountID,
			Debit:       line.Amount,
			Description: line.Description,
		})
	}
	buildLines = append(buildLines, BuildLine{
		AccountID:   apAccountID,
		Credit:      bill.TotalAmount,
		Description: fmt.Sprintf("Bill %s", bill.BillNumber),
	})

	entry, entryLines, err := s.builder.BuildEntry(BuildEntryInput{
		Description:     fmt.Sprintf("Bill %s", bill.BillNumber),
		TransactionDate: bill.BillDate,
		Lines:           buildLines,
	}, actingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, entryLines); err != nil {
		logger.Error("Failed to save journal entry for bill", "bill_id", billID, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("saving journal entry for bill %s: %w", billID, err)
	}

	if err := s.billRepo.MarkBillPosted(ctx, billID, entry.EntryID, actingUserID); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyPosted) {
			logger.Warn("Conditional posted update lost; orphan journal entry created", "bill_id", billID, "entry_id", entry.EntryID)
			return nil, fmt.Errorf("journal entry %s was created but bill %s was posted concurrently: %w", entry.EntryID, billID, err)
		}
		logger.Error("Failed to mark bill posted after journal entry creation", "bill_id", billID, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("journal entry %s was created but marking bill %s posted failed: %w", entry.EntryID, billID, err)
	}

	logger.Info("Bill posted", "bill_id", billID, "entry_id", entry.EntryID, "lines", len(lines))
	return &dto.PostBillResult{
		BillID:         billID,
		JournalEntryID: entry.EntryID,
		TotalAmount:    bill.TotalAmount,
		LinesCount:     len(lines),
	}, nil
}

// VoidBill creates a reversing journal entry for a posted bill and marks the
// bill voided.
func (s *billPostingService) VoidBill(ctx context.Context, billID string, actingUserID string) (*dto.VoidResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	if !bill.IsPosted() {
		return nil, fmt.Errorf("%w: bill %s has no journal entry to reverse", apperrors.ErrNotPosted, billID)
	}
	if bill.Status == domain.StatusVoided {
		return nil, fmt.Errorf("%w: bill %s", apperrors.ErrAlreadyVoided, billID)
	}

	originalEntryID := *bill.JournalEntryID
	originalLines, err := s.journalRepo.FindEntryLines(ctx, originalEntryID)
	if err != nil {
		logger.Error("Failed to fetch original entry lines for reversal", "bill_id", billID, "entry_id", originalEntryID, "error", err)
		return nil, fmt.Errorf("failed to fetch lines of journal entry %s: %w", originalEntryID, err)
	}

	entry, entryLines, err := s.builder.BuildEntry(BuildEntryInput{
		Description:     fmt.Sprintf("Reversal of journal entry %s (bill %s)", originalEntryID, bill.BillNumber),
		TransactionDate: time.Now().UTC(),
		Lines:           s.builder.MirrorLines(originalLines),
	}, actingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, entryLines); err != nil {
		logger.Error("Failed to save reversing journal entry", "bill_id", billID, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("saving reversing journal entry for bill %s: %w", billID, err)
	}

	if err := s.billRepo.MarkBillVoided(ctx, billID, entry.EntryID, actingUserID); err != nil {
		logger.Error("Failed to mark bill voided after reversing entry creation", "bill_id", billID, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("reversing entry %s was created but marking bill %s voided failed: %w", entry.EntryID, billID, err)
	}

	logger.Info("Bill voided", "bill_id", billID, "original_entry_id", originalEntryID, "reversing_entry_id", entry.EntryID)
	return &dto.VoidResult{
		DocumentID:              billID,
		OriginalJournalEntryID:  originalEntryID,
		ReversingJournalEntryID: entry.EntryID,
	}, nil
}
