package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portssvc "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/services"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockShiftRepo     *MockShiftRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockShiftRepo = new(MockShiftRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockShiftRepo)
}

func (suite *ReportingServiceTestSuite) TestGetTodayShiftsSummary_Success() {
	ctx := context.Background()

	suite.mockReportingRepo.On("CountActiveShifts", ctx).Return(3, nil).Once()
	suite.mockReportingRepo.On("CountShiftsEndedBetween", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(5, nil).Once()
	suite.mockReportingRepo.On("CountPendingHandovers", ctx).Return(2, nil).Once()

	summary, err := suite.service.GetTodayShiftsSummary(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(3, summary.ActiveShifts)
	suite.Equal(5, summary.CompletedShifts)
	suite.Equal(2, summary.PendingHandovers)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetTodayShiftsSummary_CountError() {
	ctx := context.Background()

	suite.mockReportingRepo.On("CountActiveShifts", ctx).Return(0, assert.AnError).Once()

	summary, err := suite.service.GetTodayShiftsSummary(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "CountPendingHandovers")
}

func (suite *ReportingServiceTestSuite) TestGetShiftReport_InvertedRange() {
	ctx := context.Background()
	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	report, err := suite.service.GetShiftReport(ctx, start, end)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockShiftRepo.AssertNotCalled(suite.T(), "ListShiftsInRange")
}

func (suite *ReportingServiceTestSuite) TestGetShiftReport_Aggregates() {
	ctx := context.Background()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)

	shiftStart := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	shiftEnd := shiftStart.Add(8 * time.Hour)
	discrepancy := decimal.NewFromInt(-20)

	shifts := []domain.Shift{
		{
			ShiftID:         uuid.NewString(),
			Status:          domain.ShiftCompleted,
			TotalRevenue:    decimal.NewFromInt(500),
			CashDiscrepancy: &discrepancy,
			ActualStart:     &shiftStart,
			ActualEnd:       &shiftEnd,
		},
		{
			ShiftID:      uuid.NewString(),
			Status:       domain.ShiftActive,
			TotalRevenue: decimal.NewFromInt(150),
			ActualStart:  &shiftStart,
		},
	}

	suite.mockShiftRepo.On("ListShiftsInRange", ctx, start, end).Return(shifts, nil).Once()

	report, err := suite.service.GetShiftReport(ctx, start, end)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Len(report.Shifts, 2)
	suite.Equal(2, report.Summary.TotalShifts)
	suite.Equal(1, report.Summary.CompletedShifts)
	suite.True(report.Summary.TotalRevenue.Equal(decimal.NewFromInt(650)))
	suite.True(report.Summary.TotalDiscrepancy.Equal(decimal.NewFromInt(-20)))
	// Only the completed shift has both actual times, so it alone sets the average.
	suite.InDelta(480.0, report.Summary.AverageShiftDuration, 0.001)
}

func (suite *ReportingServiceTestSuite) TestGetShiftReport_NoMeasuredShifts() {
	ctx := context.Background()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)

	shifts := []domain.Shift{
		{ShiftID: uuid.NewString(), Status: domain.ShiftActive, TotalRevenue: decimal.Zero},
	}

	suite.mockShiftRepo.On("ListShiftsInRange", ctx, start, end).Return(shifts, nil).Once()

	report, err := suite.service.GetShiftReport(ctx, start, end)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Zero(report.Summary.AverageShiftDuration)
	suite.Zero(report.Summary.CompletedShifts)
}

func (suite *ReportingServiceTestSuite) TestGetShiftReport_RepoError() {
	ctx := context.Background()
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC)

	suite.mockShiftRepo.On("ListShiftsInRange", ctx, start, end).Return(nil, assert.AnError).Once()

	report, err := suite.service.GetShiftReport(ctx, start, end)

	suite.Require().Error(err)
	suite.Nil(report)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
