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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandoverServiceTestSuite struct {
	suite.Suite
	mockHandoverRepo *MockHandoverRepository
	mockShiftRepo    *MockShiftRepository
	mockLedgerSvc    *MockLedgerService
	service          portssvc.HandoverSvcFacade
}

func (suite *HandoverServiceTestSuite) SetupTest() {
	suite.mockHandoverRepo = new(MockHandoverRepository)
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.mockLedgerSvc = new(MockLedgerService)
	suite.service = services.NewHandoverService(suite.mockHandoverRepo, suite.mockShiftRepo, suite.mockLedgerSvc)
}

func (suite *HandoverServiceTestSuite) TestCreateHandover_Success() {
	ctx := context.Background()
	fromStaffID := uuid.NewString()
	req := dto.CreateHandoverRequest{
		ToStaffID:    uuid.NewString(),
		HandoverType: string(domain.HandoverGeneral),
		PendingTasks: []dto.HandoverTaskInput{
			{Description: "Call back patient about lab results", Priority: "HIGH"},
		},
		ImportantNotes: []dto.HandoverNoteInput{
			{Kind: string(domain.NoteText), Text: "Printer in room 2 is jammed"},
		},
	}

	suite.mockHandoverRepo.On("SaveHandover", ctx, mock.AnythingOfType("domain.ShiftHandover")).Return(nil).Once()

	handover, err := suite.service.CreateHandover(ctx, req, fromStaffID)

	suite.Require().NoError(err)
	suite.Require().NotNil(handover)
	suite.NotEmpty(handover.HandoverID)
	suite.Equal(domain.HandoverPending, handover.Status)
	suite.Equal(fromStaffID, handover.FromStaffID)
	suite.Len(handover.PendingTasks, 1)
	suite.Len(handover.ImportantNotes, 1)
	suite.Equal(domain.NoteText, handover.ImportantNotes[0].Kind)
	suite.WithinDuration(time.Now(), handover.HandoverTime, time.Second)

	suite.mockHandoverRepo.AssertExpectations(suite.T())
}

func (suite *HandoverServiceTestSuite) TestCreateHandover_ToSelf() {
	ctx := context.Background()
	staffID := uuid.NewString()
	req := dto.CreateHandoverRequest{
		ToStaffID:    staffID,
		HandoverType: string(domain.HandoverGeneral),
	}

	handover, err := suite.service.CreateHandover(ctx, req, staffID)

	suite.Require().Error(err)
	suite.Nil(handover)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockHandoverRepo.AssertNotCalled(suite.T(), "SaveHandover")
}

func (suite *HandoverServiceTestSuite) TestCreateHandover_MissingFromShift() {
	ctx := context.Background()
	fromShiftID := uuid.NewString()
	req := dto.CreateHandoverRequest{
		ToStaffID:    uuid.NewString(),
		FromShiftID:  &fromShiftID,
		HandoverType: string(domain.HandoverGeneral),
	}

	suite.mockShiftRepo.On("FindShiftByID", ctx, fromShiftID).Return(nil, apperrors.ErrNotFound).Once()

	handover, err := suite.service.CreateHandover(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(handover)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *HandoverServiceTestSuite) TestAcceptHandover_Success() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	staffID := uuid.NewString()
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		ToStaffID:  staffID,
		Status:     domain.HandoverPending,
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()
	suite.mockHandoverRepo.On("UpdateHandover", ctx, mock.AnythingOfType("domain.ShiftHandover")).Return(nil).Once()

	handover, err := suite.service.AcceptHandover(ctx, handoverID, dto.AcceptHandoverRequest{AcceptanceNotes: "Got it"}, staffID)

	suite.Require().NoError(err)
	suite.Require().NotNil(handover)
	suite.Equal(domain.HandoverAccepted, handover.Status)
	suite.Require().NotNil(handover.AcceptedAt)
	suite.Equal("Got it", handover.AcceptanceNotes)
	suite.mockHandoverRepo.AssertExpectations(suite.T())
}

func (suite *HandoverServiceTestSuite) TestAcceptHandover_NotPending() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Status:     domain.HandoverRejected,
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()

	handover, err := suite.service.AcceptHandover(ctx, handoverID, dto.AcceptHandoverRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(handover)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockHandoverRepo.AssertNotCalled(suite.T(), "UpdateHandover")
}

func (suite *HandoverServiceTestSuite) TestCompleteHandover_RequiresAccepted() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Status:     domain.HandoverPending,
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()

	handover, err := suite.service.CompleteHandover(ctx, handoverID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(handover)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *HandoverServiceTestSuite) TestCompleteHandover_Success() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	staffID := uuid.NewString()
	accepted := time.Now().Add(-time.Minute)
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Status:     domain.HandoverAccepted,
		AcceptedAt: &accepted,
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()
	suite.mockHandoverRepo.On("UpdateHandover", ctx, mock.AnythingOfType("domain.ShiftHandover")).Return(nil).Once()

	handover, err := suite.service.CompleteHandover(ctx, handoverID, staffID)

	suite.Require().NoError(err)
	suite.Require().NotNil(handover)
	suite.Equal(domain.HandoverCompleted, handover.Status)
	suite.Require().NotNil(handover.CompletedAt)
	suite.mockHandoverRepo.AssertExpectations(suite.T())
}

func (suite *HandoverServiceTestSuite) TestRejectHandover_Success() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Status:     domain.HandoverPending,
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()
	suite.mockHandoverRepo.On("UpdateHandover", ctx, mock.AnythingOfType("domain.ShiftHandover")).Return(nil).Once()

	handover, err := suite.service.RejectHandover(ctx, handoverID, dto.RejectHandoverRequest{Reason: "Cannot take over yet"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(handover)
	suite.Equal(domain.HandoverRejected, handover.Status)
	suite.Equal("Cannot take over yet", handover.AcceptanceNotes)
}

func (suite *HandoverServiceTestSuite) TestInitiateCashDrawerHandover_CarriesSnapshotNote() {
	ctx := context.Background()
	fromStaffID := uuid.NewString()
	fromShiftID := uuid.NewString()
	amount := decimal.NewFromInt(320)

	suite.mockShiftRepo.On("FindShiftByID", ctx, fromShiftID).Return(&domain.Shift{ShiftID: fromShiftID}, nil).Once()
	suite.mockHandoverRepo.On("SaveHandover", ctx, mock.MatchedBy(func(h domain.ShiftHandover) bool {
		snapshot, ok := h.CashSnapshot()
		return h.Type == domain.HandoverCashDrawer &&
			h.Status == domain.HandoverPending &&
			ok && snapshot.Equal(amount)
	})).Return(nil).Once()

	handover, err := suite.service.InitiateCashDrawerHandover(ctx, dto.InitiateCashDrawerHandoverRequest{
		ToStaffID:   uuid.NewString(),
		FromShiftID: fromShiftID,
		CashAmount:  amount,
	}, fromStaffID)

	suite.Require().NoError(err)
	suite.Require().NotNil(handover)
	suite.Equal(domain.HandoverCashDrawer, handover.Type)

	snapshot, ok := handover.CashSnapshot()
	suite.Require().True(ok)
	suite.True(snapshot.Equal(amount))
	suite.mockHandoverRepo.AssertExpectations(suite.T())
}

func (suite *HandoverServiceTestSuite) TestInitiateCashDrawerHandover_NegativeAmount() {
	ctx := context.Background()

	handover, err := suite.service.InitiateCashDrawerHandover(ctx, dto.InitiateCashDrawerHandoverRequest{
		ToStaffID:   uuid.NewString(),
		FromShiftID: uuid.NewString(),
		CashAmount:  decimal.NewFromInt(-50),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(handover)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *HandoverServiceTestSuite) TestCompleteCashDrawerHandover_Success() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	staffID := uuid.NewString()
	toShiftID := uuid.NewString()
	confirmed := decimal.NewFromInt(320)
	snapshot := decimal.NewFromInt(320)
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Type:       domain.HandoverCashDrawer,
		Status:     domain.HandoverPending,
		ImportantNotes: []domain.HandoverNote{
			{Kind: domain.NoteCashAmount, CashAmount: &snapshot},
		},
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, toShiftID).Return(&domain.Shift{ShiftID: toShiftID}, nil).Once()
	suite.mockLedgerSvc.On("GetCurrentBalance", ctx, toShiftID).Return(decimal.Zero, nil).Once()
	suite.mockHandoverRepo.On("UpdateHandoverWithLedgerEntry", ctx, mock.AnythingOfType("domain.ShiftHandover"), mock.MatchedBy(func(txn domain.CashDrawerTransaction) bool {
		// A fresh receiving shift starts its ledger at the confirmed amount.
		return txn.ShiftID == toShiftID &&
			txn.Type == domain.CashTxnHandover &&
			txn.PreviousBalance.IsZero() &&
			txn.NewBalance.Equal(confirmed) &&
			txn.ReferenceID == handoverID
	})).Return(nil).Once()

	handover, err := suite.service.CompleteCashDrawerHandover(ctx, handoverID, dto.CompleteCashDrawerHandoverRequest{
		ToShiftID:           toShiftID,
		ConfirmedCashAmount: confirmed,
	}, staffID)

	suite.Require().NoError(err)
	suite.Require().NotNil(handover)
	suite.Equal(domain.HandoverCompleted, handover.Status)
	// Both timestamps are stamped because the cash drawer protocol skips Accepted.
	suite.Require().NotNil(handover.AcceptedAt)
	suite.Require().NotNil(handover.CompletedAt)
	suite.Require().NotNil(handover.ToShiftID)
	suite.Equal(toShiftID, *handover.ToShiftID)

	suite.mockHandoverRepo.AssertExpectations(suite.T())
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *HandoverServiceTestSuite) TestCompleteCashDrawerHandover_ChainsFromStartedShiftBalance() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	staffID := uuid.NewString()
	toShiftID := uuid.NewString()
	confirmed := decimal.NewFromInt(320)
	currentBalance := decimal.NewFromInt(150)
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Type:       domain.HandoverCashDrawer,
		Status:     domain.HandoverPending,
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, toShiftID).Return(&domain.Shift{ShiftID: toShiftID}, nil).Once()
	suite.mockLedgerSvc.On("GetCurrentBalance", ctx, toShiftID).Return(currentBalance, nil).Once()
	suite.mockHandoverRepo.On("UpdateHandoverWithLedgerEntry", ctx, mock.AnythingOfType("domain.ShiftHandover"), mock.MatchedBy(func(txn domain.CashDrawerTransaction) bool {
		// A receiving shift that already opened its drawer has entries;
		// the handover entry adds to that balance instead of resetting it.
		return txn.Type == domain.CashTxnHandover &&
			txn.PreviousBalance.Equal(currentBalance) &&
			txn.NewBalance.Equal(decimal.NewFromInt(470)) &&
			txn.Amount.Equal(confirmed)
	})).Return(nil).Once()

	handover, err := suite.service.CompleteCashDrawerHandover(ctx, handoverID, dto.CompleteCashDrawerHandoverRequest{
		ToShiftID:           toShiftID,
		ConfirmedCashAmount: confirmed,
	}, staffID)

	suite.Require().NoError(err)
	suite.Require().NotNil(handover)
	suite.Equal(domain.HandoverCompleted, handover.Status)
	suite.mockHandoverRepo.AssertExpectations(suite.T())
	suite.mockLedgerSvc.AssertExpectations(suite.T())
}

func (suite *HandoverServiceTestSuite) TestCompleteCashDrawerHandover_RejectedAppendReturnsError() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	staffID := uuid.NewString()
	toShiftID := uuid.NewString()
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Type:       domain.HandoverCashDrawer,
		Status:     domain.HandoverPending,
	}

	// When the ledger append is rejected the handover write rolls back with
	// it, so the handover stays Pending and the completion can be retried.
	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()
	suite.mockShiftRepo.On("FindShiftByID", ctx, toShiftID).Return(&domain.Shift{ShiftID: toShiftID}, nil).Once()
	suite.mockLedgerSvc.On("GetCurrentBalance", ctx, toShiftID).Return(decimal.Zero, nil).Once()
	suite.mockHandoverRepo.On("UpdateHandoverWithLedgerEntry", ctx, mock.AnythingOfType("domain.ShiftHandover"), mock.AnythingOfType("domain.CashDrawerTransaction")).
		Return(apperrors.ErrValidation).Once()

	handover, err := suite.service.CompleteCashDrawerHandover(ctx, handoverID, dto.CompleteCashDrawerHandoverRequest{
		ToShiftID:           toShiftID,
		ConfirmedCashAmount: decimal.NewFromInt(320),
	}, staffID)

	suite.Require().Error(err)
	suite.Nil(handover)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockHandoverRepo.AssertNotCalled(suite.T(), "UpdateHandover")
	suite.mockHandoverRepo.AssertExpectations(suite.T())
}

func (suite *HandoverServiceTestSuite) TestCompleteCashDrawerHandover_WrongType() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Type:       domain.HandoverGeneral,
		Status:     domain.HandoverPending,
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()

	handover, err := suite.service.CompleteCashDrawerHandover(ctx, handoverID, dto.CompleteCashDrawerHandoverRequest{
		ToShiftID:           uuid.NewString(),
		ConfirmedCashAmount: decimal.NewFromInt(100),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(handover)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *HandoverServiceTestSuite) TestCompleteCashDrawerHandover_AlreadyTerminal() {
	ctx := context.Background()
	handoverID := uuid.NewString()
	existing := &domain.ShiftHandover{
		HandoverID: handoverID,
		Type:       domain.HandoverCashDrawer,
		Status:     domain.HandoverCompleted,
	}

	suite.mockHandoverRepo.On("FindHandoverByID", ctx, handoverID).Return(existing, nil).Once()

	handover, err := suite.service.CompleteCashDrawerHandover(ctx, handoverID, dto.CompleteCashDrawerHandoverRequest{
		ToShiftID:           uuid.NewString(),
		ConfirmedCashAmount: decimal.NewFromInt(100),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(handover)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockHandoverRepo.AssertNotCalled(suite.T(), "UpdateHandoverWithLedgerEntry")
}

func (suite *HandoverServiceTestSuite) TestGetHandoverHistory_UnknownStatus() {
	ctx := context.Background()
	bad := "ARCHIVED"

	handovers, err := suite.service.GetHandoverHistory(ctx, dto.HandoverHistoryParams{Status: &bad})

	suite.Require().Error(err)
	suite.Nil(handovers)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockHandoverRepo.AssertNotCalled(suite.T(), "ListHandovers")
}

func (suite *HandoverServiceTestSuite) TestGetPendingHandovers() {
	ctx := context.Background()
	staffID := uuid.NewString()
	pending := []domain.ShiftHandover{
		{HandoverID: uuid.NewString(), ToStaffID: staffID, Status: domain.HandoverPending},
	}

	suite.mockHandoverRepo.On("ListPendingHandoversForStaff", ctx, staffID).Return(pending, nil).Once()

	handovers, err := suite.service.GetPendingHandovers(ctx, staffID)

	suite.Require().NoError(err)
	suite.Len(handovers, 1)
}

func TestHandoverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HandoverServiceTestSuite))
}
