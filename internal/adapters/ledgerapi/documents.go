package ledgerapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// InvoiceRepository implements the invoice ports against the data service.
type InvoiceRepository struct {
	client *Client
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(client *Client) *InvoiceRepository {
	return &InvoiceRepository{client: client}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	var payload invoicePayload
	if err := r.client.do(ctx, http.MethodGet, "/invoices/"+invoiceID, nil, nil, &payload); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)
		}
		return nil, err
	}
	return payload.toDomain(), nil
}

func (r *InvoiceRepository) FindInvoiceLines(ctx context.Context, invoiceID string) ([]domain.DocumentLine, error) {
	var resp documentLinesResponse
	if err := r.client.do(ctx, http.MethodGet, "/invoices/"+invoiceID+"/lines", nil, nil, &resp); err != nil {
		return nil, err
	}
	lines := make([]domain.DocumentLine, 0, len(resp.Lines))
	for _, p := range resp.Lines {
		lines = append(lines, p.toDomain())
	}
	return lines, nil
}

// MarkInvoicePosted performs the conditional posted update. The expect=unposted
// query tells the data service to apply the patch only while journalEntryId is
// null; a 409 means another writer got there first.
func (r *InvoiceRepository) MarkInvoicePosted(ctx context.Context, invoiceID, journalEntryID, postedBy string) error {
	query := url.Values{"expect": {"unposted"}}
	patch := postedPatch{
		JournalEntryID: journalEntryID,
		Status:         string(domain.StatusPosted),
		PostedBy:       postedBy,
	}
	if err := r.client.do(ctx, http.MethodPatch, "/invoices/"+invoiceID, query, patch, nil); err != nil {
		if errors.Is(err, errConflict) {
			return fmt.Errorf("%w: invoice %s already carries a journal entry", apperrors.ErrAlreadyPosted, invoiceID)
		}
		return err
	}
	return nil
}

func (r *InvoiceRepository) MarkInvoiceVoided(ctx context.Context, invoiceID, reversingEntryID, voidedBy string) error {
	patch := voidedPatch{
		Status:           string(domain.StatusVoided),
		ReversingEntryID: reversingEntryID,
		UpdatedBy:        voidedBy,
	}
	return r.client.do(ctx, http.MethodPatch, "/invoices/"+invoiceID, nil, patch, nil)
}

func (r *InvoiceRepository) UpdateInvoicePaymentState(ctx context.Context, invoiceID string, amountPaid decimal.Decimal, status domain.DocumentStatus, updatedBy string) error {
	patch := paymentStatePatch{
		AmountPaid: amountPaid,
		Status:     string(status),
		UpdatedBy:  updatedBy,
	}
	return r.client.do(ctx, http.MethodPatch, "/invoices/"+invoiceID, nil, patch, nil)
}

// BillRepository implements the bill ports against the data service.
type BillRepository struct {
	client *Client
}

// NewBillRepository creates a new BillRepository.
func NewBillRepository(client *Client) *BillRepository {
	return &BillRepository{client: client}
}

var _ portsrepo.BillRepositoryFacade = (*BillRepository)(nil)

func (r *BillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	var payload billPayload
	if err := r.client.do(ctx, http.MethodGet, "/bills/"+billID, nil, nil, &payload); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: bill %s", apperrors.ErrNotFound, billID)
		}
		return nil, err
	}
	return payload.toDomain(), nil
}

func (r *BillRepository) FindBillLines(ctx context.Context, billID string) ([]domain.DocumentLine, error) {
	var resp documentLinesResponse
	if err := r.client.do(ctx, http.MethodGet, "/bills/"+billID+"/lines", nil, nil, &resp); err != nil {
		return nil, err
	}
	lines := make([]domain.DocumentLine, 0, len(resp.Lines))
	for _, p := range resp.Lines {
		lines = append(lines, p.toDomain())
	}
	return lines, nil
}

func (r *BillRepository) MarkBillPosted(ctx context.Context, billID, journalEntryID, postedBy string) error {
	query := url.Values{"expect": {"unposted"}}
	patch := postedPatch{
		JournalEntryID: journalEntryID,
		Status:         string(domain.StatusPosted),
		PostedBy:       postedBy,
	}
	if err := r.client.do(ctx, http.MethodPatch, "/bills/"+billID, query, patch, nil); err != nil {
		if errors.Is(err, errConflict) {
			return fmt.Errorf("%w: bill %s already carries a journal entry", apperrors.ErrAlreadyPosted, billID)
		}
		return err
	}
	return nil
}

func (r *BillRepository) MarkBillVoided(ctx context.Context, billID, reversingEntryID, voidedBy string) error {
	patch := voidedPatch{
		Status:           string(domain.StatusVoided),
		ReversingEntryID: reversingEntryID,
		UpdatedBy:        voidedBy,
	}
	return r.client.do(ctx, http.MethodPatch, "/bills/"+billID, nil, patch, nil)
}

func (r *BillRepository) UpdateBillPaymentState(ctx context.Context, billID string, amountPaid decimal.Decimal, status domain.DocumentStatus, updatedBy string) error {
	patch := paymentStatePatch{
		AmountPaid: amountPaid,
		Status:     string(status),
		UpdatedBy:  updatedBy,
	}
	return r.client.do(ctx, http.MethodPatch, "/bills/"+billID, nil, patch, nil)
}
