package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HandoverStatus indicates the protocol state of a shift handover.
type HandoverStatus string

const (
	HandoverPending   HandoverStatus = "PENDING"
	HandoverAccepted  HandoverStatus = "ACCEPTED"
	HandoverCompleted HandoverStatus = "COMPLETED"
	HandoverRejected  HandoverStatus = "REJECTED"
)

// handoverTransitions is the explicit transition table for handover statuses.
// PENDING is the initial status; COMPLETED and REJECTED are terminal. The
// cash-drawer sub-protocol moves PENDING directly to COMPLETED.
var handoverTransitions = map[HandoverStatus][]HandoverStatus{
	HandoverPending:   {HandoverAccepted, HandoverCompleted, HandoverRejected},
	HandoverAccepted:  {HandoverCompleted},
	HandoverCompleted: {},
	HandoverRejected:  {},
}

// IsValid reports whether the status is one of the known enumeration values.
func (s HandoverStatus) IsValid() bool {
	_, ok := handoverTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from the receiver status to target is legal.
func (s HandoverStatus) CanTransitionTo(target HandoverStatus) bool {
	for _, next := range handoverTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s HandoverStatus) IsTerminal() bool {
	return len(handoverTransitions[s]) == 0
}

// HandoverType classifies what responsibility a handover transfers.
type HandoverType string

const (
	HandoverCashDrawer HandoverType = "CASH_DRAWER"
	HandoverGeneral    HandoverType = "GENERAL"
)

// HandoverTask is a single pending task carried across a handover.
type HandoverTask struct {
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

// HandoverNoteKind tags the shape of a structured handover note.
type HandoverNoteKind string

const (
	NoteCashAmount HandoverNoteKind = "CASH_AMOUNT"
	NoteText       HandoverNoteKind = "TEXT"
)

// HandoverNote is a tagged structured note attached to a handover. CASH_AMOUNT
// notes carry a drawer snapshot; TEXT notes carry free text.
type HandoverNote struct {
	Kind       HandoverNoteKind `json:"kind"`
	Text       string           `json:"text"`
	CashAmount *decimal.Decimal `json:"cashAmount"`
	RecordedAt time.Time        `json:"recordedAt"`
}

// ShiftHandover records the transfer of front-desk responsibility between two
// staff members. The receiving shift may not exist yet when the handover is
// created, so both shift references are optional.
type ShiftHandover struct {
	HandoverID  string         `json:"handoverID"` // Primary Key (UUID)
	FromStaffID string         `json:"fromStaffID"`
	ToStaffID   string         `json:"toStaffID"`
	FromShiftID *string        `json:"fromShiftID"`
	ToShiftID   *string        `json:"toShiftID"`
	Type        HandoverType   `json:"handoverType"`
	Status      HandoverStatus `json:"status"`

	HandoverNotes  string         `json:"handoverNotes"`
	PendingTasks   []HandoverTask `json:"pendingTasks"`
	ImportantNotes []HandoverNote `json:"importantNotes"`

	HandoverTime    time.Time  `json:"handoverTime"`
	AcceptedAt      *time.Time `json:"acceptedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	AcceptanceNotes string     `json:"acceptanceNotes"`

	AuditFields
}

// CashSnapshot returns the drawer amount recorded on the handover's CASH_AMOUNT
// note, or false when the handover carries no such note.
func (h *ShiftHandover) CashSnapshot() (decimal.Decimal, bool) {
	for _, note := range h.ImportantNotes {
		if note.Kind == NoteCashAmount && note.CashAmount != nil {
			return *note.CashAmount, true
		}
	}
	return decimal.Zero, false
}
