package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	portssvc "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/services"
)

// reportingService aggregates shifts, ledger entries, and handovers for
// dashboards. Read-only.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	shiftRepo     portsrepo.ShiftReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, shiftRepo portsrepo.ShiftReader) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		shiftRepo:     shiftRepo,
	}
}

// Ensure reportingService implements the portssvc.ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetTodayShiftsSummary returns the dashboard counters for the current day.
func (s *reportingService) GetTodayShiftsSummary(ctx context.Context) (*domain.TodayShiftsSummary, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	active, err := s.reportingRepo.CountActiveShifts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count active shifts")
		return nil, fmt.Errorf("failed to count active shifts: %w", err)
	}

	completed, err := s.reportingRepo.CountShiftsEndedBetween(ctx, startOfDay, endOfDay)
	if err != nil {
		s.LogError(ctx, err, "Failed to count shifts ended today")
		return nil, fmt.Errorf("failed to count shifts ended today: %w", err)
	}

	pending, err := s.reportingRepo.CountPendingHandovers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count pending handovers")
		return nil, fmt.Errorf("failed to count pending handovers: %w", err)
	}

	return &domain.TodayShiftsSummary{
		ActiveShifts:     active,
		CompletedShifts:  completed,
		PendingHandovers: pending,
	}, nil
}

// GetShiftReport returns the shifts scheduled in [startDate, endDate] with
// revenue, discrepancy, and duration aggregates.
func (s *reportingService) GetShiftReport(ctx context.Context, startDate, endDate time.Time) (*domain.ShiftReport, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}

	shifts, err := s.shiftRepo.ListShiftsInRange(ctx, startDate, endDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list shifts for report",
			slog.String("start_date", startDate.Format(time.RFC3339)),
			slog.String("end_date", endDate.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to list shifts for report: %w", err)
	}

	summary := domain.ShiftReportSummary{
		TotalShifts:      len(shifts),
		TotalRevenue:     decimal.Zero,
		TotalDiscrepancy: decimal.Zero,
	}

	var totalDuration time.Duration
	var measuredShifts int
	for i := range shifts {
		shift := &shifts[i]
		if shift.Status == domain.ShiftCompleted {
			summary.CompletedShifts++
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(shift.TotalRevenue)
		if shift.CashDiscrepancy != nil {
			summary.TotalDiscrepancy = summary.TotalDiscrepancy.Add(*shift.CashDiscrepancy)
		}
		if d, ok := shift.Duration(); ok {
			totalDuration += d
			measuredShifts++
		}
	}

	// Average duration is computed only over shifts that recorded both an
	// actual start and an actual end; zero when none qualify.
	if measuredShifts > 0 {
		summary.AverageShiftDuration = totalDuration.Minutes() / float64(measuredShifts)
	}

	return &domain.ShiftReport{
		Shifts:  shifts,
		Summary: summary,
	}, nil
}
