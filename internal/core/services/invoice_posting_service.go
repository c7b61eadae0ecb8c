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
	"github.com/shopspring/decimal"
)

// invoicePostingService orchestrates invoice posting and reversal against
// the remote accounting-data service. Each operation is a sequence of remote
// calls with no cross-resource transaction; preconditions are checked before
// any write, and post-write failures carry the step that failed.
type invoicePostingService struct {
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	journalRepo     portsrepo.JournalEntryRepositoryFacade
	defaultsSvc     portssvc.AccountDefaultsSvcFacade
	builder         *EntryBuilder
	revenueFallback bool
}

// NewInvoicePostingService creates a new InvoicePostingService.
// revenueFallback controls whether invoice lines without an explicit revenue
// account fall back to the Default Revenue account or fail.
func NewInvoicePostingService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	journalRepo portsrepo.JournalEntryRepositoryFacade,
	defaultsSvc portssvc.AccountDefaultsSvcFacade,
	builder *EntryBuilder,
	revenueFallback bool,
) portssvc.InvoicePostingSvcFacade {
	return &invoicePostingService{
		invoiceRepo:     invoiceRepo,
		journalRepo:     journalRepo,
		defaultsSvc:     defaultsSvc,
		builder:         builder,
		revenueFallback: revenueFallback,
	}
}

var _ portssvc.InvoicePostingSvcFacade = (*invoicePostingService)(nil)

// PostInvoice converts an unposted invoice into a balanced journal entry:
// one debit against Accounts Receivable for the invoice total, one credit
// per line against its revenue account.
func (s *invoicePostingService) PostInvoice(ctx context.Context, invoiceID string, actingUserID string) (*dto.PostInvoiceResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch invoice for posting", "invoice_id", invoiceID, "error", err)
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	// Idempotency guard: posting is not idempotent at the remote-service
	// level, so a set journalEntryId is the signal a retry must not repost.
	if invoice.IsPosted() {
		return nil, fmt.Errorf("%w: invoice %s is already posted to journal entry %s", apperrors.ErrAlreadyPosted, invoiceID, *invoice.JournalEntryID)
	}

	lines, err := s.invoiceRepo.FindInvoiceLines(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to fetch invoice lines", "invoice_id", invoiceID, "error", err)
		return nil, fmt.Errorf("failed to fetch lines for invoice %s: %w", invoiceID, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: invoice %s has no lines", apperrors.ErrNoLines, invoiceID)
	}

	defaults, err := s.defaultsSvc.GetAccountDefaults(ctx)
	if err != nil {
		return nil, err
	}
	arAccountID, err := RequireDefault(defaults, domain.AccountsReceivable)
	if err != nil {
		return nil, err
	}

	buildLines := make([]BuildLine, 0, len(lines)+1)
	buildLines = append(buildLines, BuildLine{
		AccountID:   arAccountID,
		Debit:       invoice.TotalAmount,
		Description: fmt.Sprintf("Invoice %s", invoice.InvoiceNumber),
	})
	for _, line := range lines {
		revenueAccountID := line.AccountID
		if revenueAccountID == "" {
			if !s.revenueFallback {
				return nil, fmt.Errorf("%w: invoice %s line %s has no revenue account", apperrors.ErrMissingLineAccount, invoiceID, line.LineID)
			}
			revenueAccountID, err = RequireDefault(defaults, domain.DefaultRevenue)
			if err != nil {
				return nil, err
			}
		}
		buildLines = append(buildLines, BuildLine{
			AccountID:   revenueAccountID,
			Credit:      line.Amount,
			Description: line.Description,
		})
	}

	entry, entryLines, err := s.builder.BuildEntry(BuildEntryInput{
		Description:     fmt.Sprintf("Invoice %s", invoice.InvoiceNumber),
		TransactionDate: invoice.InvoiceDate,
		Lines:           buildLines,
	}, actingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, entryLines); err != nil {
		logger.Error("Failed to save journal entry for invoice", "invoice_id", invoiceID, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("saving journal entry for invoice %s: %w", invoiceID, err)
	}

	if err := s.invoiceRepo.MarkInvoicePosted(ctx, invoiceID, entry.EntryID, actingUserID); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyPosted) {
			// Lost the conditional write: another caller posted this
			// invoice between our check and our update. Our entry is an
			// orphan the operator must reconcile.
			logger.Warn("Conditional posted update lost; orphan journal entry created", "invoice_id", invoiceID, "entry_id", entry.EntryID)
			return nil, fmt.Errorf("journal entry %s was created but invoice %s was posted concurrently: %w", entry.EntryID, invoiceID, err)
		}
		logger.Error("Failed to mark invoice posted after journal entry creation", "invoice_id", invoiceID, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("journal entry %s was created but marking invoice %s posted failed: %w", entry.EntryID, invoiceID, err)
	}

	logger.Info("Invoice posted", "invoice_id", invoiceID, "entry_id", entry.EntryID, "lines", len(lines))
	return &dto.PostInvoiceResult{
		InvoiceID:      invoiceID,
		JournalEntryID: entry.EntryID,
		TotalAmount:    invoice.TotalAmount,
		LinesCount:     len(lines),
	}, nil
}

// VoidInvoice creates a reversing journal entry for a posted invoice (debit
// and credit swapped per line, dated at the time of voiding) and marks the
// invoice voided. The original entry reference is retained for audit.
func (s *invoicePostingService) VoidInvoice(ctx context.Context, invoiceID string, actingUserID string) (*dto.VoidResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	if !invoice.IsPosted() {
		return nil, fmt.Errorf("%w: invoice %s has no journal entry to reverse", apperrors.ErrNotPosted, invoiceID)
	}
	if invoice.Status == domain.StatusVoided {
		return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrAlreadyVoided, invoiceID)
	}

	originalEntryID := *invoice.JournalEntryID
	originalLines, err := s.journalRepo.FindEntryLines(ctx, originalEntryID)
	if err != nil {
		logger.Error("Failed to fetch original entry lines for reversal", "invoice_id", invoiceID, "entry_id", originalEntryID, "error", err)
		return nil, fmt.Errorf("failed to fetch lines of journal entry %s: %w", originalEntryID, err)
	}

	entry, entryLines, err := s.builder.BuildEntry(BuildEntryInput{
		Description:     fmt.Sprintf("Reversal of journal entry %s (invoice %s)", originalEntryID, invoice.InvoiceNumber),
		TransactionDate: time.Now().UTC(),
		Lines:           s.builder.MirrorLines(originalLines),
	}, actingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, entryLines); err != nil {
		logger.Error("Failed to save reversing journal entry", "invoice_id", invoiceID, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("saving reversing journal entry for invoice %s: %w", invoiceID, err)
	}

	if err := s.invoiceRepo.MarkInvoiceVoided(ctx, invoiceID, entry.EntryID, actingUserID); err != nil {
		logger.Error("Failed to mark invoice voided after reversing entry creation", "invoice_id", invoiceID, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("reversing entry %s was created but marking invoice %s voided failed: %w", entry.EntryID, invoiceID, err)
	}

	logger.Info("Invoice voided", "invoice_id", invoiceID, "original_entry_id", originalEntryID, "reversing_entry_id", entry.EntryID)
	return &dto.VoidResult{
		DocumentID:              invoiceID,
		OriginalJournalEntryID:  originalEntryID,
		ReversingJournalEntryID: entry.EntryID,
	}, nil
}

// invoicePaymentStatus recomputes an invoice's lifecycle status from its new
// paid amount.
func invoicePaymentStatus(total, amountPaid decimal.Decimal) domain.DocumentStatus {
	if amountPaid.GreaterThanOrEqual(total) {
		return domain.StatusPaid
	}
	return domain.StatusPartiallyPaid
}
