package models

import "time"

// HandoverStatus mirrors domain.HandoverStatus for persistence.
type HandoverStatus string

// HandoverType mirrors domain.HandoverType for persistence.
type HandoverType string

// ShiftHandover is the persistence model for the shift_handovers table.
// PendingTasks and ImportantNotes are stored as JSONB documents.
type ShiftHandover struct {
	HandoverID  string         `db:"handover_id"`
	FromStaffID string         `db:"from_staff_id"`
	ToStaffID   string         `db:"to_staff_id"`
	FromShiftID *string        `db:"from_shift_id"`
	ToShiftID   *string        `db:"to_shift_id"`
	Type        HandoverType   `db:"handover_type"`
	Status      HandoverStatus `db:"status"`

	HandoverNotes  string `db:"handover_notes"`
	PendingTasks   []byte `db:"pending_tasks"`
	ImportantNotes []byte `db:"important_notes"`

	HandoverTime    time.Time  `db:"handover_time"`
	AcceptedAt      *time.Time `db:"accepted_at"`
	CompletedAt     *time.Time `db:"completed_at"`
	AcceptanceNotes string     `db:"acceptance_notes"`

	AuditFields
}
