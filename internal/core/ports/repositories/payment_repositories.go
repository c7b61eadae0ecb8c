package repositories

import (
	"context"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
)

// PaymentWriter defines write operations for customer payments.
type PaymentWriter interface {
	// SavePayment persists a new payment record.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// SavePaymentApplication persists a record linking a payment amount to
	// the invoice it settles.
	SavePaymentApplication(ctx context.Context, application domain.PaymentApplication) error
}

// BillPaymentWriter defines write operations for vendor bill payments.
type BillPaymentWriter interface {
	SaveBillPayment(ctx context.Context, payment domain.BillPayment) error
	SaveBillPaymentApplication(ctx context.Context, application domain.BillPaymentApplication) error
}
