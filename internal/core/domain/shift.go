package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus indicates the lifecycle state of a front-desk shift.
type ShiftStatus string

const (
	ShiftActive    ShiftStatus = "ACTIVE"
	ShiftCompleted ShiftStatus = "COMPLETED"
)

// shiftTransitions is the explicit transition table for shift statuses.
// ACTIVE is the initial status; COMPLETED is terminal.
var shiftTransitions = map[ShiftStatus][]ShiftStatus{
	ShiftActive:    {ShiftCompleted},
	ShiftCompleted: {},
}

// IsValid reports whether the status is one of the known enumeration values.
func (s ShiftStatus) IsValid() bool {
	_, ok := shiftTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from the receiver status to target is legal.
func (s ShiftStatus) CanTransitionTo(target ShiftStatus) bool {
	for _, next := range shiftTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Shift represents a bounded period during which a staff member is responsible
// for front-desk operations and the associated cash drawer.
type Shift struct {
	ShiftID        string      `json:"shiftID"` // Primary Key (UUID)
	StaffID        string      `json:"staffID"` // External staff reference (Not Null)
	ShiftType      string      `json:"shiftType"`
	Status         ShiftStatus `json:"status"`
	ScheduledStart time.Time   `json:"scheduledStart"`
	ScheduledEnd   time.Time   `json:"scheduledEnd"`
	ActualStart    *time.Time  `json:"actualStart"` // Nil until startShift
	ActualEnd      *time.Time  `json:"actualEnd"`   // Nil until endShift

	OpeningCashAmount    decimal.Decimal  `json:"openingCashAmount"`
	ClosingCashAmount    *decimal.Decimal `json:"closingCashAmount"`
	ExpectedCashAmount   *decimal.Decimal `json:"expectedCashAmount"`
	CashDiscrepancy      *decimal.Decimal `json:"cashDiscrepancy"`
	CashDiscrepancyNotes string           `json:"cashDiscrepancyNotes"`

	// Denormalized aggregates, overwritten wholesale by UpdateShiftStats.
	TotalTransactions int             `json:"totalTransactions"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalAppointments int             `json:"totalAppointments"`

	Notes string `json:"notes"`
	AuditFields
}

// ShiftStatsUpdate carries replacement values for a shift's denormalized
// aggregates. Callers supply full new values, not increments; nil fields are
// left untouched.
type ShiftStatsUpdate struct {
	TotalTransactions *int             `json:"totalTransactions"`
	TotalRevenue      *decimal.Decimal `json:"totalRevenue"`
	TotalAppointments *int             `json:"totalAppointments"`
}

// IsStarted reports whether the shift has recorded an actual start time.
func (s *Shift) IsStarted() bool {
	return s.ActualStart != nil
}

// Duration returns the observed shift duration, or false when the shift has not
// recorded both an actual start and an actual end.
func (s *Shift) Duration() (time.Duration, bool) {
	if s.ActualStart == nil || s.ActualEnd == nil {
		return 0, false
	}
	return s.ActualEnd.Sub(*s.ActualStart), true
}
