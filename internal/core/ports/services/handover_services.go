package services

import (
	"context"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/dto"
)

// HandoverReaderSvc defines read operations for handover data
type HandoverReaderSvc interface {
	// GetPendingHandovers retrieves Pending handovers addressed to the staff
	// member, most recent first.
	GetPendingHandovers(ctx context.Context, staffID string) ([]domain.ShiftHandover, error)

	// GetHandoverHistory retrieves a filtered handover history.
	GetHandoverHistory(ctx context.Context, params dto.HandoverHistoryParams) ([]domain.ShiftHandover, error)
}

// HandoverWriterSvc defines the general handover protocol operations
type HandoverWriterSvc interface {
	// CreateHandover creates a handover with status Pending.
	CreateHandover(ctx context.Context, req dto.CreateHandoverRequest, fromStaffID string) (*domain.ShiftHandover, error)

	// AcceptHandover moves a Pending handover to Accepted.
	AcceptHandover(ctx context.Context, handoverID string, req dto.AcceptHandoverRequest, staffID string) (*domain.ShiftHandover, error)

	// CompleteHandover moves an Accepted handover to Completed.
	CompleteHandover(ctx context.Context, handoverID string, staffID string) (*domain.ShiftHandover, error)

	// RejectHandover moves a Pending handover to Rejected.
	RejectHandover(ctx context.Context, handoverID string, req dto.RejectHandoverRequest, staffID string) (*domain.ShiftHandover, error)
}

// CashDrawerHandoverSvc is the cash-drawer-specific two-call sub-protocol layered
// on top of the general one.
type CashDrawerHandoverSvc interface {
	// InitiateCashDrawerHandover creates a Pending CASH_DRAWER handover carrying
	// a drawer snapshot note.
	InitiateCashDrawerHandover(ctx context.Context, req dto.InitiateCashDrawerHandoverRequest, fromStaffID string) (*domain.ShiftHandover, error)

	// CompleteCashDrawerHandover completes a CASH_DRAWER handover directly from
	// Pending and seeds the receiving shift's ledger with the confirmed amount.
	CompleteCashDrawerHandover(ctx context.Context, handoverID string, req dto.CompleteCashDrawerHandoverRequest, staffID string) (*domain.ShiftHandover, error)
}

// HandoverSvcFacade combines all handover service interfaces
type HandoverSvcFacade interface {
	HandoverReaderSvc
	HandoverWriterSvc
	CashDrawerHandoverSvc
}
