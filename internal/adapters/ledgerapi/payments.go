package ledgerapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
)

// PaymentRepository implements the customer payment port against the data
// service.
type PaymentRepository struct {
	client *Client
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(client *Client) *PaymentRepository {
	return &PaymentRepository{client: client}
}

var _ portsrepo.PaymentWriter = (*PaymentRepository)(nil)

func (r *PaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	if err := r.client.do(ctx, http.MethodPost, "/payments", nil, fromDomainPayment(payment), nil); err != nil {
		return fmt.Errorf("failed to create payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

func (r *PaymentRepository) SavePaymentApplication(ctx context.Context, application domain.PaymentApplication) error {
	payload := paymentApplicationPayload{
		ID:            application.ApplicationID,
		PaymentID:     application.PaymentID,
		InvoiceID:     application.InvoiceID,
		AmountApplied: application.AmountApplied,
	}
	if err := r.client.do(ctx, http.MethodPost, "/payments/"+application.PaymentID+"/applications", nil, payload, nil); err != nil {
		return fmt.Errorf("failed to apply payment %s to invoice %s: %w", application.PaymentID, application.InvoiceID, err)
	}
	return nil
}

// BillPaymentRepository implements the vendor bill payment port against the
// data service.
type BillPaymentRepository struct {
	client *Client
}

// NewBillPaymentRepository creates a new BillPaymentRepository.
func NewBillPaymentRepository(client *Client) *BillPaymentRepository {
	return &BillPaymentRepository{client: client}
}

var _ portsrepo.BillPaymentWriter = (*BillPaymentRepository)(nil)

func (r *BillPaymentRepository) SaveBillPayment(ctx context.Context, payment domain.BillPayment) error {
	if err := r.client.do(ctx, http.MethodPost, "/bill-payments", nil, fromDomainBillPayment(payment), nil); err != nil {
		return fmt.Errorf("failed to create bill payment %s: %w", payment.BillPaymentID, err)
	}
	return nil
}

func (r *BillPaymentRepository) SaveBillPaymentApplication(ctx context.Context, application domain.BillPaymentApplication) error {
	payload := billPaymentApplicationPayload{
		ID:            application.ApplicationID,
		BillPaymentID: application.BillPaymentID,
		BillID:        application.BillID,
		AmountApplied: application.AmountApplied,
	}
	if err := r.client.do(ctx, http.MethodPost, "/bill-payments/"+application.BillPaymentID+"/applications", nil, payload, nil); err != nil {
		return fmt.Errorf("failed to apply bill payment %s to bill %s: %w", application.BillPaymentID, application.BillID, err)
	}
	return nil
}
