package dto

import (
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateShiftRequest defines the data needed to open a new shift.
type CreateShiftRequest struct {
	StaffID           string           `json:"staffID" binding:"required"`
	ScheduledStart    time.Time        `json:"scheduledStart" binding:"required"`
	ScheduledEnd      time.Time        `json:"scheduledEnd" binding:"required,gtfield=ScheduledStart"`
	ShiftType         string           `json:"shiftType"`
	OpeningCashAmount *decimal.Decimal `json:"openingCashAmount"` // Optional, recorded at startShift when omitted
	Notes             string           `json:"notes"`
}

// StartShiftRequest defines the data needed to start an already-created shift.
type StartShiftRequest struct {
	OpeningCashAmount decimal.Decimal `json:"openingCashAmount" binding:"required"`
	Notes             string          `json:"notes"`
}

// EndShiftRequest defines the data needed to close a shift.
type EndShiftRequest struct {
	ClosingCashAmount    decimal.Decimal `json:"closingCashAmount" binding:"required"`
	CashDiscrepancyNotes string          `json:"cashDiscrepancyNotes"`
	Notes                string          `json:"notes"`
}

// UpdateShiftStatsRequest carries full replacement values for a shift's
// denormalized aggregates. Use pointers to distinguish omitted fields.
type UpdateShiftStatsRequest struct {
	TotalTransactions *int             `json:"totalTransactions"`
	TotalRevenue      *decimal.Decimal `json:"totalRevenue"`
	TotalAppointments *int             `json:"totalAppointments"`
}

// ListShiftsParams defines the filters accepted by the shift listing.
type ListShiftsParams struct {
	StaffID  *string    `form:"staffID"`
	Status   *string    `form:"status" binding:"omitempty,oneof=ACTIVE COMPLETED"`
	DateFrom *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit    int        `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset   int        `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ShiftResponse defines the data returned for a shift.
type ShiftResponse struct {
	ShiftID              string             `json:"shiftID"`
	StaffID              string             `json:"staffID"`
	ShiftType            string             `json:"shiftType"`
	Status               domain.ShiftStatus `json:"status"`
	ScheduledStart       time.Time          `json:"scheduledStart"`
	ScheduledEnd         time.Time          `json:"scheduledEnd"`
	ActualStart          *time.Time         `json:"actualStart,omitempty"`
	ActualEnd            *time.Time         `json:"actualEnd,omitempty"`
	OpeningCashAmount    decimal.Decimal    `json:"openingCashAmount"`
	ClosingCashAmount    *decimal.Decimal   `json:"closingCashAmount,omitempty"`
	ExpectedCashAmount   *decimal.Decimal   `json:"expectedCashAmount,omitempty"`
	CashDiscrepancy      *decimal.Decimal   `json:"cashDiscrepancy,omitempty"`
	CashDiscrepancyNotes string             `json:"cashDiscrepancyNotes,omitempty"`
	TotalTransactions    int                `json:"totalTransactions"`
	TotalRevenue         decimal.Decimal    `json:"totalRevenue"`
	TotalAppointments    int                `json:"totalAppointments"`
	Notes                string             `json:"notes,omitempty"`
	CreatedAt            time.Time          `json:"createdAt"`
}

// ToShiftResponse converts a domain.Shift to a ShiftResponse DTO.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ShiftID:              s.ShiftID,
		StaffID:              s.StaffID,
		ShiftType:            s.ShiftType,
		Status:               s.Status,
		ScheduledStart:       s.ScheduledStart,
		ScheduledEnd:         s.ScheduledEnd,
		ActualStart:          s.ActualStart,
		ActualEnd:            s.ActualEnd,
		OpeningCashAmount:    s.OpeningCashAmount,
		ClosingCashAmount:    s.ClosingCashAmount,
		ExpectedCashAmount:   s.ExpectedCashAmount,
		CashDiscrepancy:      s.CashDiscrepancy,
		CashDiscrepancyNotes: s.CashDiscrepancyNotes,
		TotalTransactions:    s.TotalTransactions,
		TotalRevenue:         s.TotalRevenue,
		TotalAppointments:    s.TotalAppointments,
		Notes:                s.Notes,
		CreatedAt:            s.CreatedAt,
	}
}

// ToShiftResponses converts a slice of domain.Shift to []ShiftResponse.
func ToShiftResponses(shifts []domain.Shift) []ShiftResponse {
	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = ToShiftResponse(&shifts[i])
	}
	return responses
}
