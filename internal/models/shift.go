package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus mirrors domain.ShiftStatus for persistence.
type ShiftStatus string

const (
	ShiftActive    ShiftStatus = "ACTIVE"
	ShiftCompleted ShiftStatus = "COMPLETED"
)

// Shift is the persistence model for the shifts table.
type Shift struct {
	ShiftID        string      `db:"shift_id"`
	StaffID        string      `db:"staff_id"`
	ShiftType      string      `db:"shift_type"`
	Status         ShiftStatus `db:"status"`
	ScheduledStart time.Time   `db:"scheduled_start"`
	ScheduledEnd   time.Time   `db:"scheduled_end"`
	ActualStart    *time.Time  `db:"actual_start"`
	ActualEnd      *time.Time  `db:"actual_end"`

	OpeningCashAmount    decimal.Decimal  `db:"opening_cash_amount"`
	ClosingCashAmount    *decimal.Decimal `db:"closing_cash_amount"`
	ExpectedCashAmount   *decimal.Decimal `db:"expected_cash_amount"`
	CashDiscrepancy      *decimal.Decimal `db:"cash_discrepancy"`
	CashDiscrepancyNotes string           `db:"cash_discrepancy_notes"`

	TotalTransactions int             `db:"total_transactions"`
	TotalRevenue      decimal.Decimal `db:"total_revenue"`
	TotalAppointments int             `db:"total_appointments"`

	Notes string `db:"notes"`
	AuditFields
}
