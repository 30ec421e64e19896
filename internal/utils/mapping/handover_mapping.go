package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/models"
)

// ToModelHandover converts a domain ShiftHandover to a model ShiftHandover,
// serializing the task and note lists to JSON documents.
func ToModelHandover(d domain.ShiftHandover) (models.ShiftHandover, error) {
	tasks, err := json.Marshal(d.PendingTasks)
	if err != nil {
		return models.ShiftHandover{}, fmt.Errorf("failed to marshal pending tasks: %w", err)
	}
	notes, err := json.Marshal(d.ImportantNotes)
	if err != nil {
		return models.ShiftHandover{}, fmt.Errorf("failed to marshal important notes: %w", err)
	}
	return models.ShiftHandover{
		HandoverID:      d.HandoverID,
		FromStaffID:     d.FromStaffID,
		ToStaffID:       d.ToStaffID,
		FromShiftID:     d.FromShiftID,
		ToShiftID:       d.ToShiftID,
		Type:            models.HandoverType(d.Type),
		Status:          models.HandoverStatus(d.Status),
		HandoverNotes:   d.HandoverNotes,
		PendingTasks:    tasks,
		ImportantNotes:  notes,
		HandoverTime:    d.HandoverTime,
		AcceptedAt:      d.AcceptedAt,
		CompletedAt:     d.CompletedAt,
		AcceptanceNotes: d.AcceptanceNotes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainHandover converts a model ShiftHandover to a domain ShiftHandover,
// deserializing the JSON task and note documents.
func ToDomainHandover(m models.ShiftHandover) (domain.ShiftHandover, error) {
	var tasks []domain.HandoverTask
	if len(m.PendingTasks) > 0 {
		if err := json.Unmarshal(m.PendingTasks, &tasks); err != nil {
			return domain.ShiftHandover{}, fmt.Errorf("failed to unmarshal pending tasks for handover %s: %w", m.HandoverID, err)
		}
	}
	var notes []domain.HandoverNote
	if len(m.ImportantNotes) > 0 {
		if err := json.Unmarshal(m.ImportantNotes, &notes); err != nil {
			return domain.ShiftHandover{}, fmt.Errorf("failed to unmarshal important notes for handover %s: %w", m.HandoverID, err)
		}
	}
	return domain.ShiftHandover{
		HandoverID:      m.HandoverID,
		FromStaffID:     m.FromStaffID,
		ToStaffID:       m.ToStaffID,
		FromShiftID:     m.FromShiftID,
		ToShiftID:       m.ToShiftID,
		Type:            domain.HandoverType(m.Type),
		Status:          domain.HandoverStatus(m.Status),
		HandoverNotes:   m.HandoverNotes,
		PendingTasks:    tasks,
		ImportantNotes:  notes,
		HandoverTime:    m.HandoverTime,
		AcceptedAt:      m.AcceptedAt,
		CompletedAt:     m.CompletedAt,
		AcceptanceNotes: m.AcceptanceNotes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainHandoverSlice converts a slice of model handovers to domain handovers
func ToDomainHandoverSlice(ms []models.ShiftHandover) ([]domain.ShiftHandover, error) {
	ds := make([]domain.ShiftHandover, len(ms))
	for i, m := range ms {
		d, err := ToDomainHandover(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
