package mapping

import (
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:              d.ShiftID,
		StaffID:              d.StaffID,
		ShiftType:            d.ShiftType,
		Status:               models.ShiftStatus(d.Status),
		ScheduledStart:       d.ScheduledStart,
		ScheduledEnd:         d.ScheduledEnd,
		ActualStart:          d.ActualStart,
		ActualEnd:            d.ActualEnd,
		OpeningCashAmount:    d.OpeningCashAmount,
		ClosingCashAmount:    d.ClosingCashAmount,
		ExpectedCashAmount:   d.ExpectedCashAmount,
		CashDiscrepancy:      d.CashDiscrepancy,
		CashDiscrepancyNotes: d.CashDiscrepancyNotes,
		TotalTransactions:    d.TotalTransactions,
		TotalRevenue:         d.TotalRevenue,
		TotalAppointments:    d.TotalAppointments,
		Notes:                d.Notes,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:              m.ShiftID,
		StaffID:              m.StaffID,
		ShiftType:            m.ShiftType,
		Status:               domain.ShiftStatus(m.Status),
		ScheduledStart:       m.ScheduledStart,
		ScheduledEnd:         m.ScheduledEnd,
		ActualStart:          m.ActualStart,
		ActualEnd:            m.ActualEnd,
		OpeningCashAmount:    m.OpeningCashAmount,
		ClosingCashAmount:    m.ClosingCashAmount,
		ExpectedCashAmount:   m.ExpectedCashAmount,
		CashDiscrepancy:      m.CashDiscrepancy,
		CashDiscrepancyNotes: m.CashDiscrepancyNotes,
		TotalTransactions:    m.TotalTransactions,
		TotalRevenue:         m.TotalRevenue,
		TotalAppointments:    m.TotalAppointments,
		Notes:                m.Notes,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShiftSlice converts a slice of model Shifts to a slice of domain Shifts
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}
