package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portssvc "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/services"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/services"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	staffID := uuid.NewString()
	req := dto.CreateCashTransactionRequest{
		ShiftID:         uuid.NewString(),
		Type:            string(domain.CashTxnSale),
		Amount:          decimal.NewFromInt(75),
		PreviousBalance: decimal.NewFromInt(200),
		NewBalance:      decimal.NewFromInt(275),
		Description:     "Consultation payment",
	}

	suite.mockRepo.On("AppendTransaction", ctx, mock.AnythingOfType("domain.CashDrawerTransaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, staffID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(req.ShiftID, txn.ShiftID)
	suite.Equal(staffID, txn.StaffID)
	suite.Equal(domain.CashTxnSale, txn.Type)
	suite.True(txn.NewBalance.Equal(req.NewBalance))
	suite.Equal(staffID, txn.CreatedBy)
	suite.WithinDuration(time.Now(), txn.CreatedAt, time.Second)
	suite.False(txn.IsVerified())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_UnknownType() {
	ctx := context.Background()
	req := dto.CreateCashTransactionRequest{
		ShiftID:    uuid.NewString(),
		Type:       "WITHDRAWAL",
		Amount:     decimal.NewFromInt(10),
		NewBalance: decimal.NewFromInt(10),
	}

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AppendTransaction")
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateCashTransactionRequest{
		ShiftID:    uuid.NewString(),
		Type:       string(domain.CashTxnAdjustment),
		Amount:     decimal.NewFromInt(-10),
		NewBalance: decimal.NewFromInt(90),
	}

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_ChainMismatchRejected() {
	ctx := context.Background()
	req := dto.CreateCashTransactionRequest{
		ShiftID:         uuid.NewString(),
		Type:            string(domain.CashTxnSale),
		Amount:          decimal.NewFromInt(50),
		PreviousBalance: decimal.NewFromInt(100), // Stale, stored balance moved on
		NewBalance:      decimal.NewFromInt(150),
	}

	suite.mockRepo.On("AppendTransaction", ctx, mock.AnythingOfType("domain.CashDrawerTransaction")).
		Return(apperrors.ErrValidation).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetCurrentBalance_EmptyLedger() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.mockRepo.On("FindLastTransactionForShift", ctx, shiftID).Return(nil, nil).Once()

	balance, err := suite.service.GetCurrentBalance(ctx, shiftID)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestGetCurrentBalance_FromLastEntry() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	last := &domain.CashDrawerTransaction{
		TransactionID: uuid.NewString(),
		ShiftID:       shiftID,
		NewBalance:    decimal.NewFromInt(425),
	}

	suite.mockRepo.On("FindLastTransactionForShift", ctx, shiftID).Return(last, nil).Once()

	balance, err := suite.service.GetCurrentBalance(ctx, shiftID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(425)))
}

func (suite *LedgerServiceTestSuite) TestGetCashTransactionsPaged_DefaultLimit() {
	ctx := context.Background()
	shiftID := uuid.NewString()
	token := "next"

	suite.mockRepo.On("ListTransactionsByShiftPaged", ctx, shiftID, 50, (*string)(nil)).
		Return([]domain.CashDrawerTransaction{{TransactionID: "t1"}}, &token, nil).Once()

	txns, nextToken, err := suite.service.GetCashTransactionsPaged(ctx, shiftID, dto.ListCashTransactionsParams{})

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.Require().NotNil(nextToken)
	suite.Equal(token, *nextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestVerifyTransaction_Success() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	verifierID := uuid.NewString()
	existing := &domain.CashDrawerTransaction{
		TransactionID: transactionID,
		NewBalance:    decimal.NewFromInt(100),
	}

	suite.mockRepo.On("FindTransactionByID", ctx, transactionID).Return(existing, nil).Once()
	suite.mockRepo.On("MarkTransactionVerified", ctx, transactionID, verifierID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	txn, err := suite.service.VerifyTransaction(ctx, transactionID, verifierID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.IsVerified())
	suite.Require().NotNil(txn.VerifiedBy)
	suite.Equal(verifierID, *txn.VerifiedBy)
	// Balances are untouched by verification.
	suite.True(txn.NewBalance.Equal(decimal.NewFromInt(100)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestVerifyTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.VerifyTransaction(ctx, transactionID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkTransactionVerified")
}

func (suite *LedgerServiceTestSuite) TestGetCashTransactions_RepoError() {
	ctx := context.Background()
	shiftID := uuid.NewString()

	suite.mockRepo.On("ListTransactionsByShift", ctx, shiftID).Return(nil, assert.AnError).Once()

	txns, err := suite.service.GetCashTransactions(ctx, shiftID)

	suite.Require().Error(err)
	suite.Nil(txns)
	suite.ErrorIs(err, assert.AnError)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
