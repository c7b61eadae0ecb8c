package services

import (
	"context"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	"github.com/openbooks-app/openbooks_backend/internal/dto"
)

// InvoicePostingSvcFacade exposes the invoice posting and reversal
// operations.
type InvoicePostingSvcFacade interface {
	// PostInvoice converts an unposted invoice into a balanced journal entry
	// and marks the invoice posted.
	PostInvoice(ctx context.Context, invoiceID string, actingUserID string) (*dto.PostInvoiceResult, error)

	// VoidInvoice creates a reversing journal entry for a posted invoice and
	// marks the invoice voided.
	VoidInvoice(ctx context.Context, invoiceID string, actingUserID string) (*dto.VoidResult, error)
}

// BillPostingSvcFacade exposes the bill posting and reversal operations.
type BillPostingSvcFacade interface {
	PostBill(ctx context.Context, billID string, actingUserID string) (*dto.PostBillResult, error)
	VoidBill(ctx context.Context, billID string, actingUserID string) (*dto.VoidResult, error)
}

// PaymentRecordingSvcFacade exposes payment recording against open documents.
type PaymentRecordingSvcFacade interface {
	// RecordInvoicePayment records a customer payment, posts the cash/AR
	// entry and applies the amounts to the target invoices.
	RecordInvoicePayment(ctx context.Context, req dto.RecordInvoicePaymentRequest, actingUserID string) (*dto.PaymentResult, error)

	// RecordBillPayment records a vendor payment, posts the AP/cash entry
	// and applies the amounts to the target bills.
	RecordBillPayment(ctx context.Context, req dto.RecordBillPaymentRequest, actingUserID string) (*dto.BillPaymentResult, error)
}

// AccountDefaultsSvcFacade resolves semantic account roles to concrete
// ledger accounts through a TTL-bounded cache.
type AccountDefaultsSvcFacade interface {
	// GetAccountDefaults returns the active defaults indexed by role. A
	// repeated call within the TTL window performs no remote fetch. Missing
	// roles are simply absent; callers decide whether that is fatal.
	GetAccountDefaults(ctx context.Context) (map[domain.AccountDefaultType]domain.AccountDefault, error)

	// Reset clears the cache so the next call refetches.
	Reset()
}
