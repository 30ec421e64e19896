package dto

import (
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// HandoverTaskInput is one pending task attached to a handover request.
type HandoverTaskInput struct {
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW NORMAL HIGH"`
}

// HandoverNoteInput is one structured note attached to a handover request.
type HandoverNoteInput struct {
	Kind       string           `json:"kind" binding:"required,oneof=CASH_AMOUNT TEXT"`
	Text       string           `json:"text"`
	CashAmount *decimal.Decimal `json:"cashAmount"`
}

// CreateHandoverRequest defines the data needed to create a general handover.
// The sending staff member is the authenticated caller.
type CreateHandoverRequest struct {
	ToStaffID      string              `json:"toStaffID" binding:"required"`
	FromShiftID    *string             `json:"fromShiftID"`
	ToShiftID      *string             `json:"toShiftID"`
	HandoverType   string              `json:"handoverType" binding:"required,oneof=CASH_DRAWER GENERAL"`
	HandoverNotes  string              `json:"handoverNotes"`
	PendingTasks   []HandoverTaskInput `json:"pendingTasks"`
	ImportantNotes []HandoverNoteInput `json:"importantNotes"`
}

// AcceptHandoverRequest defines the payload for accepting a pending handover.
type AcceptHandoverRequest struct {
	AcceptanceNotes string `json:"acceptanceNotes"`
}

// RejectHandoverRequest defines the payload for rejecting a pending handover.
type RejectHandoverRequest struct {
	Reason string `json:"reason"`
}

// InitiateCashDrawerHandoverRequest starts the cash-drawer-specific sub-protocol.
type InitiateCashDrawerHandoverRequest struct {
	ToStaffID   string          `json:"toStaffID" binding:"required"`
	FromShiftID string          `json:"fromShiftID" binding:"required"`
	CashAmount  decimal.Decimal `json:"cashAmount" binding:"required"`
	Notes       string          `json:"notes"`
}

// CompleteCashDrawerHandoverRequest finishes the cash-drawer-specific sub-protocol.
type CompleteCashDrawerHandoverRequest struct {
	ToShiftID           string          `json:"toShiftID" binding:"required"`
	ConfirmedCashAmount decimal.Decimal `json:"confirmedCashAmount" binding:"required"`
	AcceptanceNotes     string          `json:"acceptanceNotes"`
}

// HandoverHistoryParams defines the filters accepted by the handover history listing.
type HandoverHistoryParams struct {
	StaffID      *string    `form:"staffID"`
	HandoverType *string    `form:"handoverType" binding:"omitempty,oneof=CASH_DRAWER GENERAL"`
	Status       *string    `form:"status" binding:"omitempty,oneof=PENDING ACCEPTED COMPLETED REJECTED"`
	DateFrom     *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo       *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Limit        int        `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// HandoverResponse defines the data returned for a shift handover.
type HandoverResponse struct {
	HandoverID      string                `json:"handoverID"`
	FromStaffID     string                `json:"fromStaffID"`
	ToStaffID       string                `json:"toStaffID"`
	FromShiftID     *string               `json:"fromShiftID,omitempty"`
	ToShiftID       *string               `json:"toShiftID,omitempty"`
	HandoverType    domain.HandoverType   `json:"handoverType"`
	Status          domain.HandoverStatus `json:"status"`
	HandoverNotes   string                `json:"handoverNotes,omitempty"`
	PendingTasks    []domain.HandoverTask `json:"pendingTasks"`
	ImportantNotes  []domain.HandoverNote `json:"importantNotes"`
	HandoverTime    time.Time             `json:"handoverTime"`
	AcceptedAt      *time.Time            `json:"acceptedAt,omitempty"`
	CompletedAt     *time.Time            `json:"completedAt,omitempty"`
	AcceptanceNotes string                `json:"acceptanceNotes,omitempty"`
}

// ToHandoverResponse converts a domain.ShiftHandover to a HandoverResponse DTO.
func ToHandoverResponse(h *domain.ShiftHandover) HandoverResponse {
	return HandoverResponse{
		HandoverID:      h.HandoverID,
		FromStaffID:     h.FromStaffID,
		ToStaffID:       h.ToStaffID,
		FromShiftID:     h.FromShiftID,
		ToShiftID:       h.ToShiftID,
		HandoverType:    h.Type,
		Status:          h.Status,
		HandoverNotes:   h.HandoverNotes,
		PendingTasks:    h.PendingTasks,
		ImportantNotes:  h.ImportantNotes,
		HandoverTime:    h.HandoverTime,
		AcceptedAt:      h.AcceptedAt,
		CompletedAt:     h.CompletedAt,
		AcceptanceNotes: h.AcceptanceNotes,
	}
}

// ToHandoverResponses converts a slice of domain handovers.
func ToHandoverResponses(handovers []domain.ShiftHandover) []HandoverResponse {
	responses := make([]HandoverResponse, len(handovers))
	for i := range handovers {
		responses[i] = ToHandoverResponse(&handovers[i])
	}
	return responses
}

// ToDomainHandoverTasks converts task inputs to domain tasks.
func ToDomainHandoverTasks(inputs []HandoverTaskInput) []domain.HandoverTask {
	tasks := make([]domain.HandoverTask, len(inputs))
	for i, in := range inputs {
		tasks[i] = domain.HandoverTask{
			Description: in.Description,
			Priority:    in.Priority,
		}
	}
	return tasks
}

// ToDomainHandoverNotes converts note inputs to domain notes, stamping each with
// the given time.
func ToDomainHandoverNotes(inputs []HandoverNoteInput, recordedAt time.Time) []domain.HandoverNote {
	notes := make([]domain.HandoverNote, len(inputs))
	for i, in := range inputs {
		notes[i] = domain.HandoverNote{
			Kind:       domain.HandoverNoteKind(in.Kind),
			Text:       in.Text,
			CashAmount: in.CashAmount,
			RecordedAt: recordedAt,
		}
	}
	return notes
}
