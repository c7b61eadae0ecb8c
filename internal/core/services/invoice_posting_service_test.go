package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/core/services"
	"github.com/openbooks-app/openbooks_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoicePostingServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockJournalRepo *MockJournalEntryRepository
	mockDefaultsSvc *MockAccountDefaultsService
	service         portssvc.InvoicePostingSvcFacade
	defaults        map[domain.AccountDefaultType]domain.AccountDefault
	userID          string
	invoice         *domain.Invoice
}

func (suite *InvoicePostingServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockJournalRepo = new(MockJournalEntryRepository)
	suite.mockDefaultsSvc = new(MockAccountDefaultsService)
	suite.service = services.NewInvoicePostingService(
		suite.mockInvoiceRepo,
		suite.mockJournalRepo,
		suite.mockDefaultsSvc,
		services.NewEntryBuilder(),
		true,
	)

	suite.userID = uuid.NewString()
	suite.defaults = map[domain.AccountDefaultType]domain.AccountDefault{
		domain.AccountsReceivable: {AccountType: domain.AccountsReceivable, AccountID: "acct-ar", IsActive: true},
		domain.DefaultRevenue:     {AccountType: domain.DefaultRevenue, AccountID: "acct-rev-default", IsActive: true},
	}
	suite.invoice = &domain.Invoice{
		InvoiceID:     "inv-1",
		InvoiceNumber: "INV-100",
		CustomerID:    "cust-1",
		InvoiceDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:   decimal.NewFromInt(1000),
		Status:        domain.StatusDraft,
	}
}

func (suite *InvoicePostingServiceTestSuite) invoiceLines() []domain.DocumentLine {
	return []domain.DocumentLine{
		{LineID: "line-1", DocumentID: "inv-1", Description: "Consulting", Amount: decimal.NewFromInt(600), AccountID: "acct-rev-a"},
		{LineID: "line-2", DocumentID: "inv-1", Description: "Licenses", Amount: decimal.NewFromInt(400), AccountID: "acct-rev-b"},
	}
}

func (suite *InvoicePostingServiceTestSuite) TestPostInvoice_Success() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceLines", ctx, "inv-1").Return(suite.invoiceLines(), nil).Once()
	suite.mockDefaultsSvc.On("GetAccountDefaults", ctx).Return(suite.defaults, nil).Once()

	var savedLines []domain.JournalEntryLine
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLine")).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.JournalEntryLine)
		}).Return(nil).Once()
	suite.mockInvoiceRepo.On("MarkInvoicePosted", ctx, "inv-1", mock.AnythingOfType("string"), suite.userID).Return(nil).Once()

	result, err := suite.service.PostInvoice(ctx, "inv-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("inv-1", result.InvoiceID)
	suite.NotEmpty(result.JournalEntryID)
	suite.Equal(2, result.LinesCount)

	// One AR debit for the total, one revenue credit per line, balanced.
	suite.Require().Len(savedLines, 3)
	suite.Equal("acct-ar", savedLines[0].AccountID)
	suite.True(savedLines[0].Debit.Equal(decimal.NewFromInt(1000)))
	suite.Equal("acct-rev-a", savedLines[1].AccountID)
	suite.True(savedLines[1].Credit.Equal(decimal.NewFromInt(600)))
	suite.Equal("acct-rev-b", savedLines[2].AccountID)
	suite.True(savedLines[2].Credit.Equal(decimal.NewFromInt(400)))
	suite.NoError(accounting.ValidateEntryBalance(savedLines))

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *InvoicePostingServiceTestSuite) TestPostInvoice_AlreadyPosted() {
	ctx := context.Background()
	entryID := "entry-existing"
	suite.invoice.JournalEntryID = &entryID
	suite.invoice.Status = domain.StatusPosted

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()

	_, err := suite.service.PostInvoice(ctx, "inv-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyPosted)
	suite.Contains(err.Error(), entryID)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoicePostingServiceTestSuite) TestPostInvoice_NotFound() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostInvoice(ctx, "inv-missing", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *InvoicePostingServiceTestSuite) TestPostInvoice_NoLines() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceLines", ctx, "inv-1").Return([]domain.DocumentLine{}, nil).Once()

	_, err := suite.service.PostInvoice(ctx, "inv-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoLines)
	suite.mockDefaultsSvc.AssertNotCalled(suite.T(), "GetAccountDefaults", mock.Anything)
}

func (suite *InvoicePostingServiceTestSuite) TestPostInvoice_MissingARDefault() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceLines", ctx, "inv-1").Return(suite.invoiceLines(), nil).Once()
	suite.mockDefaultsSvc.On("GetAccountDefaults", ctx).Return(map[domain.AccountDefaultType]domain.AccountDefault{}, nil).Once()

	_, err := suite.service.PostInvoice(ctx, "inv-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.Contains(err.Error(), "Accounts Receivable")
}

func (suite *InvoicePostingServiceTestSuite) TestPostInvoice_LineWithoutAccountUsesDefaultRevenue() {
	ctx := context.Background()
	lines := []domain.DocumentLine{
		{LineID: "line-1", DocumentID: "inv-1", Amount: decimal.NewFromInt(1000), AccountID: ""},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceLines", ctx, "inv-1").Return(lines, nil).Once()
	suite.mockDefaultsSvc.On("GetAccountDefaults", ctx).Return(suite.defaults, nil).Once()

	var savedLines []domain.JournalEntryLine
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLine")).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.JournalEntryLine)
		}).Return(nil).Once()
	suite.mockInvoiceRepo.On("MarkInvoicePosted", ctx, "inv-1", mock.AnythingOfType("string"), suite.userID).Return(nil).Once()

	_, err := suite.service.PostInvoice(ctx, "inv-1", suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(savedLines, 2)
	suite.Equal("acct-rev-default", savedLines[1].AccountID)
}

func (suite *InvoicePostingServiceTestSuite) TestPostInvoice_LineWithoutAccountFailsWhenFallbackDisabled() {
	ctx := context.Background()
	strictService := services.NewInvoicePostingService(
		suite.mockInvoiceRepo,
		suite.mockJournalRepo,
		suite.mockDefaultsSvc,
		services.NewEntryBuilder(),
		false,
	)
	lines := []domain.DocumentLine{
		{LineID: "line-1", DocumentID: "inv-1", Amount: decimal.NewFromInt(1000), AccountID: ""},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceLines", ctx, "inv-1").Return(lines, nil).Once()
	suite.mockDefaultsSvc.On("GetAccountDefaults", ctx).Return(suite.defaults, nil).Once()

	_, err := strictService.PostInvoice(ctx, "inv-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingLineAccount)
	suite.Contains(err.Error(), "line-1")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoicePostingServiceTestSuite) TestPostInvoice_ConcurrentPostLosesConditionalWrite() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceLines", ctx, "inv-1").Return(suite.invoiceLines(), nil).Once()
	suite.mockDefaultsSvc.On("GetAccountDefaults", ctx).Return(suite.defaults, nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLine")).Return(nil).Once()
	suite.mockInvoiceRepo.On("MarkInvoicePosted", ctx, "inv-1", mock.AnythingOfType("string"), suite.userID).Return(apperrors.ErrAlreadyPosted).Once()

	_, err := suite.service.PostInvoice(ctx, "inv-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyPosted)
	suite.Contains(err.Error(), "posted concurrently")
}

func (suite *InvoicePostingServiceTestSuite) TestVoidInvoice_Success() {
	ctx := context.Background()
	entryID := "entry-1"
	suite.invoice.JournalEntryID = &entryID
	suite.invoice.Status = domain.StatusPosted

	originalLines := []domain.JournalEntryLine{
		{LineID: "jl-1", EntryID: entryID, AccountID: "acct-ar", Debit: decimal.NewFromInt(1000), Position: 0},
		{LineID: "jl-2", EntryID: entryID, AccountID: "acct-rev-a", Credit: decimal.NewFromInt(600), Position: 1},
		{LineID: "jl-3", EntryID: entryID, AccountID: "acct-rev-b", Credit: decimal.NewFromInt(400), Position: 2},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()
	suite.mockJournalRepo.On("FindEntryLines", ctx, entryID).Return(originalLines, nil).Once()

	var savedLines []domain.JournalEntryLine
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLine")).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.JournalEntryLine)
		}).Return(nil).Once()
	suite.mockInvoiceRepo.On("MarkInvoiceVoided", ctx, "inv-1", mock.AnythingOfType("string"), suite.userID).Return(nil).Once()

	result, err := suite.service.VoidInvoice(ctx, "inv-1", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(entryID, result.OriginalJournalEntryID)
	suite.NotEmpty(result.ReversingJournalEntryID)
	suite.NotEqual(entryID, result.ReversingJournalEntryID)

	// Mirror of the original: same accounts, debit and credit swapped.
	suite.Require().Len(savedLines, 3)
	suite.True(savedLines[0].Credit.Equal(decimal.NewFromInt(1000)))
	suite.True(savedLines[1].Debit.Equal(decimal.NewFromInt(600)))
	suite.True(savedLines[2].Debit.Equal(decimal.NewFromInt(400)))
	suite.NoError(accounting.ValidateEntryBalance(savedLines))
}

func (suite *InvoicePostingServiceTestSuite) TestVoidInvoice_NotPosted() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()

	_, err := suite.service.VoidInvoice(ctx, "inv-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotPosted)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindEntryLines", mock.Anything, mock.Anything)
}

func (suite *InvoicePostingServiceTestSuite) TestVoidInvoice_AlreadyVoided() {
	ctx := context.Background()
	entryID := "entry-1"
	suite.invoice.JournalEntryID = &entryID
	suite.invoice.Status = domain.StatusVoided

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, "inv-1").Return(suite.invoice, nil).Once()

	_, err := suite.service.VoidInvoice(ctx, "inv-1", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyVoided)
}

func TestInvoicePostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoicePostingServiceTestSuite))
}
