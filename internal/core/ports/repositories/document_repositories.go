package repositories

import (
	"context"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceReader defines read operations for invoices held by the remote
// accounting-data service.
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceLines retrieves the line items belonging to an invoice.
	FindInvoiceLines(ctx context.Context, invoiceID string) ([]domain.DocumentLine, error)
}

// InvoiceWriter defines status updates for invoices. The engine never deletes
// documents; it only advances their lifecycle fields.
type InvoiceWriter interface {
	// MarkInvoicePosted sets the journal entry reference and POSTED status.
	// The data service applies the update only while journal_entry_id is
	// still null, so a lost race surfaces as apperrors.ErrAlreadyPosted
	// instead of a silent double entry.
	MarkInvoicePosted(ctx context.Context, invoiceID, journalEntryID, postedBy string) error

	// MarkInvoiceVoided sets VOIDED status and records the reversing entry.
	// The original journal entry reference is retained for audit.
	MarkInvoiceVoided(ctx context.Context, invoiceID, reversingEntryID, voidedBy string) error

	// UpdateInvoicePaymentState writes the recomputed paid amount and
	// paid/partially-paid status after a payment application.
	UpdateInvoicePaymentState(ctx context.Context, invoiceID string, amountPaid decimal.Decimal, status domain.DocumentStatus, updatedBy string) error
}

// BillReader defines read operations for bills.
type BillReader interface {
	// FindBillByID retrieves a specific bill by its unique identifier.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// FindBillLines retrieves the line items belonging to a bill.
	FindBillLines(ctx context.Context, billID string) ([]domain.DocumentLine, error)
}

// BillWriter defines status updates for bills, mirroring InvoiceWriter.
type BillWriter interface {
	MarkBillPosted(ctx context.Context, billID, journalEntryID, postedBy string) error
	MarkBillVoided(ctx context.Context, billID, reversingEntryID, voidedBy string) error
	UpdateBillPaymentState(ctx context.Context, billID string, amountPaid decimal.Decimal, status domain.DocumentStatus, updatedBy string) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
