package services

import (
	"context"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/dto"
)

// ShiftReaderSvc defines read operations for shift data
type ShiftReaderSvc interface {
	// GetShiftByID retrieves a specific shift by its ID.
	GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// GetActiveShift retrieves the staff member's current Active shift, or nil
	// when none exists.
	GetActiveShift(ctx context.Context, staffID string) (*domain.Shift, error)

	// GetActiveShifts retrieves every Active shift clinic-wide.
	GetActiveShifts(ctx context.Context) ([]domain.Shift, error)

	// GetShifts retrieves a filtered, paginated shift listing, most recently
	// scheduled first.
	GetShifts(ctx context.Context, params dto.ListShiftsParams) ([]domain.Shift, error)
}

// ShiftWriterSvc defines write operations for shift data
type ShiftWriterSvc interface {
	// CreateShift opens a new shift with status Active.
	CreateShift(ctx context.Context, req dto.CreateShiftRequest, creatorStaffID string) (*domain.Shift, error)

	// StartShift records the actual start and seeds the cash ledger with an
	// OPENING entry.
	StartShift(ctx context.Context, shiftID string, req dto.StartShiftRequest, staffID string) (*domain.Shift, error)

	// EndShift closes the shift, computes the cash discrepancy, and appends a
	// CLOSING ledger entry.
	EndShift(ctx context.Context, shiftID string, req dto.EndShiftRequest, staffID string) (*domain.Shift, error)

	// UpdateShiftStats overwrites the shift's denormalized aggregates.
	UpdateShiftStats(ctx context.Context, shiftID string, req dto.UpdateShiftStatsRequest, staffID string) (*domain.Shift, error)
}

// ShiftSvcFacade combines all shift-related service interfaces
type ShiftSvcFacade interface {
	ShiftReaderSvc
	ShiftWriterSvc
}
