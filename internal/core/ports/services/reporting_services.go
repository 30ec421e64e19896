package services

import (
	"context"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
)

// ReportingService defines read-only aggregation across shifts, transactions,
// and handovers.
type ReportingService interface {
	// GetTodayShiftsSummary returns the dashboard counters for the current day.
	GetTodayShiftsSummary(ctx context.Context) (*domain.TodayShiftsSummary, error)

	// GetShiftReport returns the shifts in [startDate, endDate] with aggregates.
	GetShiftReport(ctx context.Context, startDate, endDate time.Time) (*domain.ShiftReport, error)
}
