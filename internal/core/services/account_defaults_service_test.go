package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openbooks-app/openbooks_backend/internal/apperrors"
	"github.com/openbooks-app/openbooks_backend/internal/core/domain"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type AccountDefaultsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountDefaultRepository
	service  portssvc.AccountDefaultsSvcFacade
	defaults []domain.AccountDefault
}

func (suite *AccountDefaultsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountDefaultRepository)
	suite.service = services.NewAccountDefaultsService(suite.mockRepo, 5*time.Minute)

	suite.defaults = []domain.AccountDefault{
		{DefaultID: "d1", AccountType: domain.AccountsReceivable, AccountID: "acct-ar", IsActive: true},
		{DefaultID: "d2", AccountType: domain.AccountsPayable, AccountID: "acct-ap", IsActive: true},
		{DefaultID: "d3", AccountType: domain.DefaultRevenue, AccountID: "acct-rev", IsActive: true},
		{DefaultID: "d4", AccountType: domain.DefaultCash, AccountID: "acct-cash", IsActive: true},
	}
}

func (suite *AccountDefaultsServiceTestSuite) TestGetAccountDefaults_FetchesOnceWithinTTL() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountDefaults", ctx).Return(suite.defaults, nil).Once()

	first, err := suite.service.GetAccountDefaults(ctx)
	suite.Require().NoError(err)
	second, err := suite.service.GetAccountDefaults(ctx)
	suite.Require().NoError(err)

	suite.Equal(first, second)
	suite.Equal("acct-ar", first[domain.AccountsReceivable].AccountID)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindAccountDefaults", 1)
}

func (suite *AccountDefaultsServiceTestSuite) TestGetAccountDefaults_FiltersInactive() {
	ctx := context.Background()
	withInactive := append(suite.defaults, domain.AccountDefault{
		DefaultID: "d5", AccountType: domain.AccountsReceivable, AccountID: "acct-ar-old", IsActive: false,
	})
	// Inactive rows never shadow active ones regardless of order.
	suite.mockRepo.On("FindAccountDefaults", ctx).Return(withInactive, nil).Once()

	resolved, err := suite.service.GetAccountDefaults(ctx)

	suite.Require().NoError(err)
	suite.Equal("acct-ar", resolved[domain.AccountsReceivable].AccountID)
	suite.Len(resolved, 4)
}

func (suite *AccountDefaultsServiceTestSuite) TestGetAccountDefaults_RefetchesAfterReset() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountDefaults", ctx).Return(suite.defaults, nil).Twice()

	_, err := suite.service.GetAccountDefaults(ctx)
	suite.Require().NoError(err)

	suite.service.Reset()

	_, err = suite.service.GetAccountDefaults(ctx)
	suite.Require().NoError(err)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindAccountDefaults", 2)
}

func (suite *AccountDefaultsServiceTestSuite) TestGetAccountDefaults_RefetchesAfterTTL() {
	ctx := context.Background()
	shortLived := services.NewAccountDefaultsService(suite.mockRepo, time.Millisecond)
	suite.mockRepo.On("FindAccountDefaults", ctx).Return(suite.defaults, nil).Twice()

	_, err := shortLived.GetAccountDefaults(ctx)
	suite.Require().NoError(err)

	time.Sleep(5 * time.Millisecond)

	_, err = shortLived.GetAccountDefaults(ctx)
	suite.Require().NoError(err)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "FindAccountDefaults", 2)
}

func (suite *AccountDefaultsServiceTestSuite) TestGetAccountDefaults_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("remote fetch failed")
	suite.mockRepo.On("FindAccountDefaults", ctx).Return(nil, repoErr).Once()

	_, err := suite.service.GetAccountDefaults(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
}

func (suite *AccountDefaultsServiceTestSuite) TestGetAccountDefaults_ErrorIsNotCached() {
	ctx := context.Background()
	suite.mockRepo.On("FindAccountDefaults", ctx).Return(nil, errors.New("down")).Once()
	suite.mockRepo.On("FindAccountDefaults", ctx).Return(suite.defaults, nil).Once()

	_, err := suite.service.GetAccountDefaults(ctx)
	suite.Require().Error(err)

	resolved, err := suite.service.GetAccountDefaults(ctx)
	suite.Require().NoError(err)
	suite.Len(resolved, 4)
}

func (suite *AccountDefaultsServiceTestSuite) TestRequireDefault_Missing() {
	resolved := map[domain.AccountDefaultType]domain.AccountDefault{
		domain.AccountsReceivable: {AccountID: "acct-ar"},
	}

	_, err := services.RequireDefault(resolved, domain.DefaultCash)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
	suite.Contains(err.Error(), "Default Cash")
}

func (suite *AccountDefaultsServiceTestSuite) TestRequireDefault_Present() {
	resolved := map[domain.AccountDefaultType]domain.AccountDefault{
		domain.AccountsReceivable: {AccountID: "acct-ar"},
	}

	accountID, err := services.RequireDefault(resolved, domain.AccountsReceivable)

	suite.Require().NoError(err)
	suite.Equal("acct-ar", accountID)
}

func TestAccountDefaultsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountDefaultsServiceTestSuite))
}
