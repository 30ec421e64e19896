package domain

import (
	"github.com/shopspring/decimal"
)

// TodayShiftsSummary is the front-desk dashboard counter row.
type TodayShiftsSummary struct {
	ActiveShifts     int `json:"activeShifts"`
	CompletedShifts  int `json:"completedShifts"` // Shifts ended today
	PendingHandovers int `json:"pendingHandovers"`
}

// ShiftReportSummary aggregates shifts over a date range.
type ShiftReportSummary struct {
	TotalShifts          int             `json:"totalShifts"`
	CompletedShifts      int             `json:"completedShifts"`
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalDiscrepancy     decimal.Decimal `json:"totalDiscrepancy"`
	AverageShiftDuration float64         `json:"averageShiftDuration"` // Minutes; 0 when no shift has both actual times
}

// ShiftReport bundles the shifts in a date range with their summary.
type ShiftReport struct {
	Shifts  []Shift            `json:"shifts"`
	Summary ShiftReportSummary `json:"summary"`
}
