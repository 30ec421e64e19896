package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	portssvc "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/services"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/dto"
)

var (
	ErrShiftAlreadyStarted = errors.New("shift has already been started")
	ErrShiftNotActive      = errors.New("shift is not active")
	ErrActiveShiftExists   = errors.New("staff member already has an active shift")
)

// shiftService manages the shift lifecycle and queries.
type shiftService struct {
	BaseService
	shiftRepo portsrepo.ShiftRepositoryFacade
	ledgerSvc portssvc.LedgerSvcFacade
}

// NewShiftService creates a new shift service.
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade) portssvc.ShiftSvcFacade {
	return &shiftService{
		shiftRepo: shiftRepo,
		ledgerSvc: ledgerSvc,
	}
}

// Ensure shiftService implements the portssvc.ShiftSvcFacade interface
var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// CreateShift opens a new shift with status Active. The single-active-shift
// invariant is enforced by the storage layer, not advisory application logic.
func (s *shiftService) CreateShift(ctx context.Context, req dto.CreateShiftRequest, creatorStaffID string) (*domain.Shift, error) {
	if !req.ScheduledEnd.After(req.ScheduledStart) {
		return nil, fmt.Errorf("%w: scheduled end must be after scheduled start", apperrors.ErrValidation)
	}

	openingCash := decimal.Zero
	if req.OpeningCashAmount != nil {
		if req.OpeningCashAmount.IsNegative() {
			return nil, fmt.Errorf("%w: opening cash amount must not be negative", apperrors.ErrValidation)
		}
		openingCash = *req.OpeningCashAmount
	}

	now := time.Now()
	shift := domain.Shift{
		ShiftID:           uuid.NewString(),
		StaffID:           req.StaffID,
		ShiftType:         req.ShiftType,
		Status:            domain.ShiftActive,
		ScheduledStart:    req.ScheduledStart,
		ScheduledEnd:      req.ScheduledEnd,
		OpeningCashAmount: openingCash,
		TotalRevenue:      decimal.Zero,
		Notes:             req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorStaffID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorStaffID,
		},
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Rejected shift creation, staff member already has an active shift",
				slog.String("staff_id", req.StaffID))
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicate, ErrActiveShiftExists)
		}
		s.LogError(ctx, err, "Failed to save shift", slog.String("staff_id", req.StaffID))
		return nil, err
	}

	s.LogInfo(ctx, "Shift created",
		slog.String("shift_id", shift.ShiftID),
		slog.String("staff_id", shift.StaffID))
	return &shift, nil
}

// StartShift records the actual start time and seeds the cash ledger with an
// OPENING entry. The entry chains from the current ledger balance, which is
// zero for a fresh shift and the transferred amount when a drawer handover
// already landed. The shift update and the ledger append are persisted in one
// repository transaction. Starting an already-started shift is rejected.
func (s *shiftService) StartShift(ctx context.Context, shiftID string, req dto.StartShiftRequest, staffID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift.Status != domain.ShiftActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrShiftNotActive)
	}
	if shift.IsStarted() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrShiftAlreadyStarted)
	}
	if req.OpeningCashAmount.IsNegative() {
		return nil, fmt.Errorf("%w: opening cash amount must not be negative", apperrors.ErrValidation)
	}

	currentBalance, err := s.ledgerSvc.GetCurrentBalance(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shift.ActualStart = &now
	shift.OpeningCashAmount = req.OpeningCashAmount
	if req.Notes != "" {
		shift.Notes = req.Notes
	}
	shift.LastUpdatedAt = now
	shift.LastUpdatedBy = staffID

	opening := buildCashDrawerEntry(dto.CreateCashTransactionRequest{
		ShiftID:         shiftID,
		Type:            string(domain.CashTxnOpening),
		Amount:          req.OpeningCashAmount.Sub(currentBalance).Abs(),
		PreviousBalance: currentBalance,
		NewBalance:      req.OpeningCashAmount,
		Description:     "Opening cash drawer balance",
	}, staffID, now)

	if err := s.shiftRepo.UpdateShiftWithLedgerEntry(ctx, *shift, opening); err != nil {
		s.LogError(ctx, err, "Failed to start shift", slog.String("shift_id", shiftID))
		return nil, err
	}

	s.LogInfo(ctx, "Shift started",
		slog.String("shift_id", shiftID),
		slog.String("opening_cash", req.OpeningCashAmount.String()))
	return shift, nil
}

// EndShift closes an Active shift. The expected amount is the opening snapshot,
// not the running ledger balance; intervening sales are reconciled separately
// against billing. A CLOSING entry chains the ledger to the counted amount, and
// the shift update shares the append's transaction: a balance moved by a
// concurrent sale rejects the whole close instead of leaving a completed shift
// with no closing entry.
func (s *shiftService) EndShift(ctx context.Context, shiftID string, req dto.EndShiftRequest, staffID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift.Status != domain.ShiftActive {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrShiftNotActive)
	}
	if !shift.Status.CanTransitionTo(domain.ShiftCompleted) {
		return nil, fmt.Errorf("%w: cannot complete shift in status %s", apperrors.ErrInvalidState, shift.Status)
	}
	if req.ClosingCashAmount.IsNegative() {
		return nil, fmt.Errorf("%w: closing cash amount must not be negative", apperrors.ErrValidation)
	}

	currentBalance, err := s.ledgerSvc.GetCurrentBalance(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expected := shift.OpeningCashAmount
	discrepancy := req.ClosingCashAmount.Sub(expected)

	shift.ActualEnd = &now
	shift.Status = domain.ShiftCompleted
	shift.ClosingCashAmount = &req.ClosingCashAmount
	shift.ExpectedCashAmount = &expected
	shift.CashDiscrepancy = &discrepancy
	shift.CashDiscrepancyNotes = req.CashDiscrepancyNotes
	if req.Notes != "" {
		shift.Notes = req.Notes
	}
	shift.LastUpdatedAt = now
	shift.LastUpdatedBy = staffID

	closing := buildCashDrawerEntry(dto.CreateCashTransactionRequest{
		ShiftID:         shiftID,
		Type:            string(domain.CashTxnClosing),
		Amount:          req.ClosingCashAmount.Sub(currentBalance).Abs(),
		PreviousBalance: currentBalance,
		NewBalance:      req.ClosingCashAmount,
		Description:     "Closing cash drawer balance",
		Notes:           req.CashDiscrepancyNotes,
	}, staffID, now)

	if err := s.shiftRepo.UpdateShiftWithLedgerEntry(ctx, *shift, closing); err != nil {
		s.LogError(ctx, err, "Failed to end shift", slog.String("shift_id", shiftID))
		return nil, err
	}

	if !discrepancy.IsZero() {
		s.LogWarn(ctx, "Shift closed with cash discrepancy",
			slog.String("shift_id", shiftID),
			slog.String("discrepancy", discrepancy.String()))
	}
	s.LogInfo(ctx, "Shift ended",
		slog.String("shift_id", shiftID),
		slog.String("closing_cash", req.ClosingCashAmount.String()))
	return shift, nil
}

// GetShiftByID retrieves a specific shift.
func (s *shiftService) GetShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	return s.shiftRepo.FindShiftByID(ctx, shiftID)
}

// GetActiveShift retrieves the staff member's current Active shift, or nil when
// none exists. If the single-active invariant is somehow violated the most
// recently created shift wins and the inconsistency is logged.
func (s *shiftService) GetActiveShift(ctx context.Context, staffID string) (*domain.Shift, error) {
	shifts, err := s.shiftRepo.FindActiveShiftsByStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return nil, nil
	}
	if len(shifts) > 1 {
		s.LogWarn(ctx, "Multiple active shifts found for staff member, returning the most recent",
			slog.String("staff_id", staffID),
			slog.Int("active_count", len(shifts)))
	}
	return &shifts[0], nil
}

// GetActiveShifts retrieves every Active shift clinic-wide.
func (s *shiftService) GetActiveShifts(ctx context.Context) ([]domain.Shift, error) {
	return s.shiftRepo.ListActiveShifts(ctx)
}

// GetShifts retrieves a filtered, paginated shift listing.
func (s *shiftService) GetShifts(ctx context.Context, params dto.ListShiftsParams) ([]domain.Shift, error) {
	filters := portsrepo.ShiftListFilters{
		StaffID:  params.StaffID,
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
	}
	if params.Status != nil {
		status := domain.ShiftStatus(*params.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown shift status %q", apperrors.ErrValidation, *params.Status)
		}
		filters.Status = &status
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	return s.shiftRepo.ListShifts(ctx, filters, limit, offset)
}

// UpdateShiftStats overwrites the shift's denormalized aggregates with the
// supplied full values.
func (s *shiftService) UpdateShiftStats(ctx context.Context, shiftID string, req dto.UpdateShiftStatsRequest, staffID string) (*domain.Shift, error) {
	if req.TotalTransactions == nil && req.TotalRevenue == nil && req.TotalAppointments == nil {
		return nil, fmt.Errorf("%w: at least one aggregate value is required", apperrors.ErrValidation)
	}

	now := time.Now()
	stats := domain.ShiftStatsUpdate{
		TotalTransactions: req.TotalTransactions,
		TotalRevenue:      req.TotalRevenue,
		TotalAppointments: req.TotalAppointments,
	}
	if err := s.shiftRepo.UpdateShiftStats(ctx, shiftID, stats, staffID, now); err != nil {
		s.LogError(ctx, err, "Failed to update shift stats", slog.String("shift_id", shiftID))
		return nil, err
	}

	return s.shiftRepo.FindShiftByID(ctx, shiftID)
}
