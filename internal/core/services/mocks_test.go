package services_test

import (
	"context"

	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

// Ensure MockInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceLines(ctx context.Context, invoiceID string) ([]domain.DocumentLine, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentLine), args.Error(1)
}

func (m *MockInvoiceRepository) MarkInvoicePosted(ctx context.Context, invoiceID, journalEntryID, postedBy string) error {
	args := m.Called(ctx, invoiceID, journalEntryID, postedBy)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkInvoiceVoided(ctx context.Context, invoiceID, reversingEntryID, voidedBy string) error {
	args := m.Called(ctx, invoiceID, reversingEntryID, voidedBy)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoicePaymentState(ctx context.Context, invoiceID string, amountPaid decimal.Decimal, status domain.DocumentStatus, updatedBy string) error {
	args := m.Called(ctx, invoiceID, amountPaid, status, updatedBy)
	return args.Error(0)
}

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

var _ portsrepo.BillRepositoryFacade = (*MockBillRepository)(nil)

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindBillLines(ctx context.Context, billID string) ([]domain.DocumentLine, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentLine), args.Error(1)
}

func (m *MockBillRepository) MarkBillPosted(ctx context.Context, billID, journalEntryID, postedBy string) error {
	args := m.Called(ctx, billID, journalEntryID, postedBy)
	return args.Error(0)
}

func (m *MockBillRepository) MarkBillVoided(ctx context.Context, billID, reversingEntryID, voidedBy string) error {
	args := m.Called(ctx, billID, reversingEntryID, voidedBy)
	return args.Error(0)
}

func (m *MockBillRepository) UpdateBillPaymentState(ctx context.Context, billID string, amountPaid decimal.Decimal, status domain.DocumentStatus, updatedBy string) error {
	args := m.Called(ctx, billID, amountPaid, status, updatedBy)
	return args.Error(0)
}

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) FindEntryLines(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

// --- Mock AccountDefaultRepository ---
type MockAccountDefaultRepository struct {
	mock.Mock
}

var _ portsrepo.AccountDefaultReader = (*MockAccountDefaultRepository)(nil)

func (m *MockAccountDefaultRepository) FindAccountDefaults(ctx context.Context) ([]domain.AccountDefault, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountDefault), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentWriter = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) SavePaymentApplication(ctx context.Context, application domain.PaymentApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

// --- Mock BillPaymentRepository ---
type MockBillPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.BillPaymentWriter = (*MockBillPaymentRepository)(nil)

func (m *MockBillPaymentRepository) SaveBillPayment(ctx context.Context, payment domain.BillPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockBillPaymentRepository) SaveBillPaymentApplication(ctx context.Context, application domain.BillPaymentApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

// --- Mock AccountDefaultsService (as used by the posting services) ---
type MockAccountDefaultsService struct {
	mock.Mock
}

var _ portssvc.AccountDefaultsSvcFacade = (*MockAccountDefaultsService)(nil)

func (m *MockAccountDefaultsService) GetAccountDefaults(ctx context.Context) (map[domain.AccountDefaultType]domain.AccountDefault, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AccountDefaultType]domain.AccountDefault), args.Error(1)
}

func (m *MockAccountDefaultsService) Reset() {
	m.Called()
}
