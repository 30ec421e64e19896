package dto

import (
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShiftReportParams defines the date range for a shift report.
type ShiftReportParams struct {
	StartDate time.Time `form:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `form:"endDate" binding:"required" time_format:"2006-01-02"`
}

// TodayShiftsSummaryResponse is the dashboard counters payload.
type TodayShiftsSummaryResponse struct {
	ActiveShifts     int `json:"activeShifts"`
	CompletedShifts  int `json:"completedShifts"`
	PendingHandovers int `json:"pendingHandovers"`
}

// ShiftReportSummaryResponse is the aggregate block of a shift report.
type ShiftReportSummaryResponse struct {
	TotalShifts          int             `json:"totalShifts"`
	CompletedShifts      int             `json:"completedShifts"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalDiscrepancy     decimal.Decimal `json:"totalDiscrepancy"`
	AverageShiftDuration float64         `json:"averageShiftDuration"`
}

// ShiftReportResponse is the full date-range report payload.
type ShiftReportResponse struct {
	Shifts  []ShiftResponse            `json:"shifts"`
	Summary ShiftReportSummaryResponse `json:"summary"`
}

// ToTodayShiftsSummaryResponse converts the domain summary to its DTO.
func ToTodayShiftsSummaryResponse(s *domain.TodayShiftsSummary) TodayShiftsSummaryResponse {
	return TodayShiftsSummaryResponse{
		ActiveShifts:     s.ActiveShifts,
		CompletedShifts:  s.CompletedShifts,
		PendingHandovers: s.PendingHandovers,
	}
}

// ToShiftReportResponse converts the domain report to its DTO.
func ToShiftReportResponse(r *domain.ShiftReport) ShiftReportResponse {
	return ShiftReportResponse{
		Shifts: ToShiftResponses(r.Shifts),
		Summary: ShiftReportSummaryResponse{
			TotalShifts:          r.Summary.TotalShifts,
			CompletedShifts:      r.Summary.CompletedShifts,
			TotalRevenue:         r.Summary.TotalRevenue,
			TotalDiscrepancy:     r.Summary.TotalDiscrepancy,
			AverageShiftDuration: r.Summary.AverageShiftDuration,
		},
	}
}
