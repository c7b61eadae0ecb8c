package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/dto"
	"github.com/openbooks-app/openbooks_backend/internal/middleware"
	"github.com/openbooks-app/openbooks_backend/internal/utils/numbering"
	"github.com/shopspring/decimal"
)

// paymentService records customer and vendor payments: it posts the two-line
// cash movement entry, persists the payment aggregate and applies the paid
// amounts to the target documents.
type paymentService struct {
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	billRepo        portsrepo.BillRepositoryFacade
	journalRepo     portsrepo.JournalEntryRepositoryFacade
	paymentRepo     portsrepo.PaymentWriter
	billPaymentRepo portsrepo.BillPaymentWriter
	defaultsSvc     portssvc.AccountDefaultsSvcFacade
	builder         *EntryBuilder
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	billRepo portsrepo.BillRepositoryFacade,
	journalRepo portsrepo.JournalEntryRepositoryFacade,
	paymentRepo portsrepo.PaymentWriter,
	billPaymentRepo portsrepo.BillPaymentWriter,
	defaultsSvc portssvc.AccountDefaultsSvcFacade,
	builder *EntryBuilder,
) portssvc.PaymentRecordingSvcFacade {
	return &paymentService{
		invoiceRepo:     invoiceRepo,
		billRepo:        billRepo,
		journalRepo:     journalRepo,
		paymentRepo:     paymentRepo,
		billPaymentRepo: billPaymentRepo,
		defaultsSvc:     defaultsSvc,
		builder:         builder,
	}
}

var _ portssvc.PaymentRecordingSvcFacade = (*paymentService)(nil)

// RecordInvoicePayment records a customer payment: debit Cash, credit
// Accounts Receivable for the payment total, then apply the amounts to the
// target invoices (additive AmountPaid plus paid/partially-paid recompute).
func (s *paymentService) RecordInvoicePayment(ctx context.Context, req dto.RecordInvoicePaymentRequest, actingUserID string) (*dto.PaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CustomerID == "" {
		return nil, fmt.Errorf("%w: customerID is required", apperrors.ErrValidation)
	}
	if req.PaymentDate.IsZero() {
		return nil, fmt.Errorf("%w: paymentDate is required", apperrors.ErrValidation)
	}
	if req.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: totalAmount must be positive", apperrors.ErrValidation)
	}
	if len(req.Applications) == 0 {
		return nil, fmt.Errorf("%w: at least one application is required", apperrors.ErrValidation)
	}
	for i, app := range req.Applications {
		if app.InvoiceID == "" {
			return nil, fmt.Errorf("%w: application %d is missing its invoice", apperrors.ErrValidation, i+1)
		}
		if app.AmountApplied.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: application %d amount must be positive", apperrors.ErrValidation, i+1)
		}
	}

	defaults, err := s.defaultsSvc.GetAccountDefaults(ctx)
	if err != nil {
		return nil, err
	}
	cashAccountID, err := RequireDefault(defaults, domain.DefaultCash)
	if err != nil {
		return nil, err
	}
	arAccountID, err := RequireDefault(defaults, domain.AccountsReceivable)
	if err != nil {
		return nil, err
	}

	paymentNumber, err := numbering.GenerateReference(numbering.PaymentPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment number: %w", err)
	}

	entry, entryLines, err := s.builder.BuildEntry(BuildEntryInput{
		Description:     fmt.Sprintf("Payment %s from customer %s", paymentNumber, req.CustomerID),
		TransactionDate: req.PaymentDate,
		Lines: []BuildLine{
			{AccountID: cashAccountID, Debit: req.TotalAmount, Description: fmt.Sprintf("Payment %s", paymentNumber)},
			{AccountID: arAccountID, Credit: req.TotalAmount, Description: fmt.Sprintf("Payment %s", paymentNumber)},
		},
	}, actingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, entryLines); err != nil {
		logger.Error("Failed to save journal entry for payment", "payment_number", paymentNumber, "error", err)
		return nil, fmt.Errorf("saving journal entry for payment %s: %w", paymentNumber, err)
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		PaymentNumber:  paymentNumber,
		CustomerID:     req.CustomerID,
		PaymentDate:    req.PaymentDate,
		TotalAmount:    req.TotalAmount,
		PaymentMethod:  req.PaymentMethod,
		JournalEntryID: entry.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}
	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save payment after journal entry creation", "payment_number", paymentNumber, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("journal entry %s was created but saving payment %s failed: %w", entry.EntryID, paymentNumber, err)
	}

	for _, app := range req.Applications {
		application := domain.PaymentApplication{
			ApplicationID: uuid.NewString(),
			PaymentID:     payment.PaymentID,
			InvoiceID:     app.InvoiceID,
			AmountApplied: app.AmountApplied,
		}
		if err := s.paymentRepo.SavePaymentApplication(ctx, application); err != nil {
			logger.Error("Failed to save payment application", "payment_id", payment.PaymentID, "invoice_id", app.InvoiceID, "error", err)
			return nil, fmt.Errorf("payment %s was created but application to invoice %s failed: %w", paymentNumber, app.InvoiceID, err)
		}

		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, app.InvoiceID)
		if err != nil {
			return nil, fmt.Errorf("payment %s was created but invoice %s could not be fetched for balance update: %w", paymentNumber, app.InvoiceID, err)
		}
		newPaid := invoice.AmountPaid.Add(app.AmountApplied)
		status := invoicePaymentStatus(invoice.TotalAmount, newPaid)
		if err := s.invoiceRepo.UpdateInvoicePaymentState(ctx, app.InvoiceID, newPaid, status, actingUserID); err != nil {
			logger.Error("Failed to update invoice payment state", "payment_id", payment.PaymentID, "invoice_id", app.InvoiceID, "error", err)
			return nil, fmt.Errorf("payment %s was created but updating invoice %s balance failed: %w", paymentNumber, app.InvoiceID, err)
		}
	}

	logger.Info("Invoice payment recorded", "payment_id", payment.PaymentID, "payment_number", paymentNumber, "entry_id", entry.EntryID, "applications", len(req.Applications))
	return &dto.PaymentResult{
		PaymentID:         payment.PaymentID,
		PaymentNumber:     paymentNumber,
		JournalEntryID:    entry.EntryID,
		TotalAmount:       req.TotalAmount,
		ApplicationsCount: len(req.Applications),
	}, nil
}

// RecordBillPayment records a vendor payment: debit Accounts Payable, credit
// Cash for the payment total, then apply the amounts to the target bills.
func (s *paymentService) RecordBillPayment(ctx context.Context, req dto.RecordBillPaymentRequest, actingUserID string) (*dto.BillPaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.VendorID == "" {
		return nil, fmt.Errorf("%w: vendorID is required", apperrors.ErrValidation)
	}
	if req.PaymentDate.IsZero() {
		return nil, fmt.Errorf("%w: paymentDate is required", apperrors.ErrValidation)
	}
	if req.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: totalAmount must be positive", apperrors.ErrValidation)
	}
	if len(req.Applications) == 0 {
		return nil, fmt.Errorf("%w: at least one application is required", apperrors.ErrValidation)
	}
	for i, app := range req.Applications {
		if app.BillID == "" {
			return nil, fmt.Errorf("%w: application %d is missing its bill", apperrors.ErrValidation, i+1)
		}
		if app.AmountApplied.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: application %d amount must be positive", apperrors.ErrValidation, i+1)
		}
	}

	defaults, err := s.defaultsSvc.GetAccountDefaults(ctx)
	if err != nil {
		return nil, err
	}
	cashAccountID, err := RequireDefault(defaults, domain.DefaultCash)
	if err != nil {
		return nil, err
	}
	apAccountID, err := RequireDefault(defaults, domain.AccountsPayable)
	if err != nil {
		return nil, err
	}

	paymentNumber, err := numbering.GenerateReference(numbering.BillPaymentPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to generate bill payment number: %w", err)
	}

	entry, entryLines, err := s.builder.BuildEntry(BuildEntryInput{
		Description:     fmt.Sprintf("Bill payment %s to vendor %s", paymentNumber, req.VendorID),
		TransactionDate: req.PaymentDate,
		Lines: []BuildLine{
			{AccountID: apAccountID, Debit: req.TotalAmount, Description: fmt.Sprintf("Bill payment %s", paymentNumber)},
			{AccountID: cashAccountID, Credit: req.TotalAmount, Description: fmt.Sprintf("Bill payment %s", paymentNumber)},
		},
	}, actingUserID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, entryLines); err != nil {
		logger.Error("Failed to save journal entry for bill payment", "payment_number", paymentNumber, "error", err)
		return nil, fmt.Errorf("saving journal entry for bill payment %s: %w", paymentNumber, err)
	}

	now := time.Now().UTC()
	payment := domain.BillPayment{
		BillPaymentID:  uuid.NewString(),
		PaymentNumber:  paymentNumber,
		VendorID:       req.VendorID,
		PaymentDate:    req.PaymentDate,
		TotalAmount:    req.TotalAmount,
		PaymentMethod:  req.PaymentMethod,
		JournalEntryID: entry.EntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actingUserID,
		},
	}
	if err := s.billPaymentRepo.SaveBillPayment(ctx, payment); err != nil {
		logger.Error("Failed to save bill payment after journal entry creation", "payment_number", paymentNumber, "entry_id", entry.EntryID, "error", err)
		return nil, fmt.Errorf("journal entry %s was created but saving bill payment %s failed: %w", entry.EntryID, paymentNumber, err)
	}

	for _, app := range req.Applications {
		application := domain.BillPaymentApplication{
			ApplicationID: uuid.NewString(),
			BillPaymentID: payment.BillPaymentID,
			BillID:        app.BillID,
			AmountApplied: app.AmountApplied,
		}
		if err := s.billPaymentRepo.SaveBillPaymentApplication(ctx, application); err != nil {
			logger.Error("Failed to save bill payment application", "bill_payment_id", payment.BillPaymentID, "bill_id", app.BillID, "error", err)
			return nil, fmt.Errorf("bill payment %s was created but application to bill %s failed: %w", paymentNumber, app.BillID, err)
		}

		bill, err := s.billRepo.FindBillByID(ctx, app.BillID)
		if err != nil {
			return nil, fmt.Errorf("bill payment %s was created but bill %s could not be fetched for balance update: %w", paymentNumber, app.BillID, err)
		}
		newPaid := bill.AmountPaid.Add(app.AmountApplied)
		status := invoicePaymentStatus(bill.TotalAmount, newPaid)
		if err := s.billRepo.UpdateBillPaymentState(ctx, app.BillID, newPaid, status, actingUserID); err != nil {
			logger.Error("Failed to update bill payment state", "bill_payment_id", payment.BillPaymentID, "bill_id", app.BillID, "error", err)
			return nil, fmt.Errorf("bill payment %s was created but updating bill %s balance failed: %w", paymentNumber, app.BillID, err)
		}
	}

	logger.Info("Bill payment recorded", "bill_payment_id", payment.BillPaymentID, "payment_number", paymentNumber, "entry_id", entry.EntryID, "applications", len(req.Applications))
	return &dto.BillPaymentResult{
		BillPaymentID:     payment.BillPaymentID,
		PaymentNumber:     paymentNumber,
		JournalEntryID:    entry.EntryID,
		TotalAmount:       req.TotalAmount,
		ApplicationsCount: len(req.Applications),
	}, nil
}
