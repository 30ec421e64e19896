package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	portssvc "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/services"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/dto"
)

var (
	ErrHandoverNotPending    = errors.New("handover is not pending")
	ErrHandoverNotAccepted   = errors.New("handover must be accepted before completion")
	ErrHandoverNotCashDrawer = errors.New("handover is not a cash drawer handover")
	ErrHandoverTerminal      = errors.New("handover is already in a terminal status")
)

// handoverService transfers front-desk responsibility between staff members.
type handoverService struct {
	BaseService
	handoverRepo portsrepo.HandoverRepositoryFacade
	shiftRepo    portsrepo.ShiftRepositoryFacade
	ledgerSvc    portssvc.LedgerSvcFacade
}

// NewHandoverService creates a new handover service.
func NewHandoverService(handoverRepo portsrepo.HandoverRepositoryFacade, shiftRepo portsrepo.ShiftRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade) portssvc.HandoverSvcFacade {
	return &handoverService{
		handoverRepo: handoverRepo,
		shiftRepo:    shiftRepo,
		ledgerSvc:    ledgerSvc,
	}
}

// Ensure handoverService implements the portssvc.HandoverSvcFacade interface
var _ portssvc.HandoverSvcFacade = (*handoverService)(nil)

// CreateHandover creates a handover with status Pending. The receiving shift may
// not exist yet, so shift references are optional and validated only when given.
func (s *handoverService) CreateHandover(ctx context.Context, req dto.CreateHandoverRequest, fromStaffID string) (*domain.ShiftHandover, error) {
	if req.ToStaffID == fromStaffID {
		return nil, fmt.Errorf("%w: cannot hand over to yourself", apperrors.ErrValidation)
	}
	handoverType := domain.HandoverType(req.HandoverType)
	if handoverType != domain.HandoverCashDrawer && handoverType != domain.HandoverGeneral {
		return nil, fmt.Errorf("%w: unknown handover type %q", apperrors.ErrValidation, req.HandoverType)
	}

	if req.FromShiftID != nil {
		if _, err := s.shiftRepo.FindShiftByID(ctx, *req.FromShiftID); err != nil {
			return nil, fmt.Errorf("from shift: %w", err)
		}
	}
	if req.ToShiftID != nil {
		if _, err := s.shiftRepo.FindShiftByID(ctx, *req.ToShiftID); err != nil {
			return nil, fmt.Errorf("to shift: %w", err)
		}
	}

	now := time.Now()
	handover := domain.ShiftHandover{
		HandoverID:     uuid.NewString(),
		FromStaffID:    fromStaffID,
		ToStaffID:      req.ToStaffID,
		FromShiftID:    req.FromShiftID,
		ToShiftID:      req.ToShiftID,
		Type:           handoverType,
		Status:         domain.HandoverPending,
		HandoverNotes:  req.HandoverNotes,
		PendingTasks:   dto.ToDomainHandoverTasks(req.PendingTasks),
		ImportantNotes: dto.ToDomainHandoverNotes(req.ImportantNotes, now),
		HandoverTime:   now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     fromStaffID,
			LastUpdatedAt: now,
			LastUpdatedBy: fromStaffID,
		},
	}

	if err := s.handoverRepo.SaveHandover(ctx, handover); err != nil {
		s.LogError(ctx, err, "Failed to save handover",
			slog.String("from_staff_id", fromStaffID),
			slog.String("to_staff_id", req.ToStaffID))
		return nil, err
	}

	s.LogInfo(ctx, "Handover created",
		slog.String("handover_id", handover.HandoverID),
		slog.String("handover_type", string(handover.Type)))
	return &handover, nil
}

// AcceptHandover moves a Pending handover to Accepted.
func (s *handoverService) AcceptHandover(ctx context.Context, handoverID string, req dto.AcceptHandoverRequest, staffID string) (*domain.ShiftHandover, error) {
	handover, err := s.handoverRepo.FindHandoverByID(ctx, handoverID)
	if err != nil {
		return nil, err
	}
	if !handover.Status.CanTransitionTo(domain.HandoverAccepted) {
		return nil, fmt.Errorf("%w: %s (current status %s)", apperrors.ErrInvalidState, ErrHandoverNotPending, handover.Status)
	}

	now := time.Now()
	handover.Status = domain.HandoverAccepted
	handover.AcceptedAt = &now
	handover.AcceptanceNotes = req.AcceptanceNotes
	handover.LastUpdatedAt = now
	handover.LastUpdatedBy = staffID

	if err := s.handoverRepo.UpdateHandover(ctx, *handover); err != nil {
		s.LogError(ctx, err, "Failed to accept handover", slog.String("handover_id", handoverID))
		return nil, err
	}

	s.LogInfo(ctx, "Handover accepted", slog.String("handover_id", handoverID))
	return handover, nil
}

// CompleteHandover moves an Accepted handover to Completed. The general protocol
// requires acceptance first; the cash drawer sub-protocol has its own entry point.
func (s *handoverService) CompleteHandover(ctx context.Context, handoverID string, staffID string) (*domain.ShiftHandover, error) {
	handover, err := s.handoverRepo.FindHandoverByID(ctx, handoverID)
	if err != nil {
		return nil, err
	}
	if handover.Status != domain.HandoverAccepted {
		return nil, fmt.Errorf("%w: %s (current status %s)", apperrors.ErrInvalidState, ErrHandoverNotAccepted, handover.Status)
	}

	now := time.Now()
	handover.Status = domain.HandoverCompleted
	handover.CompletedAt = &now
	handover.LastUpdatedAt = now
	handover.LastUpdatedBy = staffID

	if err := s.handoverRepo.UpdateHandover(ctx, *handover); err != nil {
		s.LogError(ctx, err, "Failed to complete handover", slog.String("handover_id", handoverID))
		return nil, err
	}

	s.LogInfo(ctx, "Handover completed", slog.String("handover_id", handoverID))
	return handover, nil
}

// RejectHandover moves a Pending handover to Rejected.
func (s *handoverService) RejectHandover(ctx context.Context, handoverID string, req dto.RejectHandoverRequest, staffID string) (*domain.ShiftHandover, error) {
	handover, err := s.handoverRepo.FindHandoverByID(ctx, handoverID)
	if err != nil {
		return nil, err
	}
	if !handover.Status.CanTransitionTo(domain.HandoverRejected) {
		return nil, fmt.Errorf("%w: %s (current status %s)", apperrors.ErrInvalidState, ErrHandoverNotPending, handover.Status)
	}

	now := time.Now()
	handover.Status = domain.HandoverRejected
	handover.AcceptanceNotes = req.Reason
	handover.LastUpdatedAt = now
	handover.LastUpdatedBy = staffID

	if err := s.handoverRepo.UpdateHandover(ctx, *handover); err != nil {
		s.LogError(ctx, err, "Failed to reject handover", slog.String("handover_id", handoverID))
		return nil, err
	}

	s.LogInfo(ctx, "Handover rejected", slog.String("handover_id", handoverID))
	return handover, nil
}

// GetPendingHandovers retrieves Pending handovers addressed to the staff member.
func (s *handoverService) GetPendingHandovers(ctx context.Context, staffID string) ([]domain.ShiftHandover, error) {
	return s.handoverRepo.ListPendingHandoversForStaff(ctx, staffID)
}

// GetHandoverHistory retrieves a filtered handover history.
func (s *handoverService) GetHandoverHistory(ctx context.Context, params dto.HandoverHistoryParams) ([]domain.ShiftHandover, error) {
	filters := portsrepo.HandoverListFilters{
		StaffID:  params.StaffID,
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
	}
	if params.HandoverType != nil {
		handoverType := domain.HandoverType(*params.HandoverType)
		filters.Type = &handoverType
	}
	if params.Status != nil {
		status := domain.HandoverStatus(*params.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown handover status %q", apperrors.ErrValidation, *params.Status)
		}
		filters.Status = &status
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	return s.handoverRepo.ListHandovers(ctx, filters, limit)
}

// InitiateCashDrawerHandover creates a Pending CASH_DRAWER handover carrying a
// snapshot of the drawer amount being transferred.
func (s *handoverService) InitiateCashDrawerHandover(ctx context.Context, req dto.InitiateCashDrawerHandoverRequest, fromStaffID string) (*domain.ShiftHandover, error) {
	if req.CashAmount.IsNegative() {
		return nil, fmt.Errorf("%w: cash amount must not be negative", apperrors.ErrValidation)
	}

	cashAmount := req.CashAmount
	createReq := dto.CreateHandoverRequest{
		ToStaffID:     req.ToStaffID,
		FromShiftID:   &req.FromShiftID,
		HandoverType:  string(domain.HandoverCashDrawer),
		HandoverNotes: req.Notes,
		ImportantNotes: []dto.HandoverNoteInput{
			{
				Kind:       string(domain.NoteCashAmount),
				Text:       "Cash drawer amount at handover",
				CashAmount: &cashAmount,
			},
		},
	}

	handover, err := s.CreateHandover(ctx, createReq, fromStaffID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Cash drawer handover initiated",
		slog.String("handover_id", handover.HandoverID),
		slog.String("cash_amount", req.CashAmount.String()))
	return handover, nil
}

// CompleteCashDrawerHandover completes a CASH_DRAWER handover directly from
// Pending, recording both acceptance and completion, and adds the confirmed
// amount to the receiving shift's ledger as a HANDOVER entry. The entry chains
// from the receiving shift's current balance (zero for a fresh shift), never
// from the sending shift's ledger. The handover update and the ledger append
// are persisted in one repository transaction.
func (s *handoverService) CompleteCashDrawerHandover(ctx context.Context, handoverID string, req dto.CompleteCashDrawerHandoverRequest, staffID string) (*domain.ShiftHandover, error) {
	handover, err := s.handoverRepo.FindHandoverByID(ctx, handoverID)
	if err != nil {
		return nil, err
	}
	if handover.Type != domain.HandoverCashDrawer {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidState, ErrHandoverNotCashDrawer)
	}
	if handover.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s (current status %s)", apperrors.ErrInvalidState, ErrHandoverTerminal, handover.Status)
	}
	if req.ConfirmedCashAmount.IsNegative() {
		return nil, fmt.Errorf("%w: confirmed cash amount must not be negative", apperrors.ErrValidation)
	}

	toShift, err := s.shiftRepo.FindShiftByID(ctx, req.ToShiftID)
	if err != nil {
		return nil, fmt.Errorf("receiving shift: %w", err)
	}

	if snapshot, ok := handover.CashSnapshot(); ok && !snapshot.Equal(req.ConfirmedCashAmount) {
		s.LogWarn(ctx, "Confirmed cash amount differs from handover snapshot",
			slog.String("handover_id", handoverID),
			slog.String("snapshot", snapshot.String()),
			slog.String("confirmed", req.ConfirmedCashAmount.String()))
	}

	currentBalance, err := s.ledgerSvc.GetCurrentBalance(ctx, toShift.ShiftID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	handover.Status = domain.HandoverCompleted
	handover.ToShiftID = &req.ToShiftID
	handover.AcceptedAt = &now
	handover.CompletedAt = &now
	handover.AcceptanceNotes = req.AcceptanceNotes
	handover.LastUpdatedAt = now
	handover.LastUpdatedBy = staffID

	received := buildCashDrawerEntry(dto.CreateCashTransactionRequest{
		ShiftID:         toShift.ShiftID,
		Type:            string(domain.CashTxnHandover),
		Amount:          req.ConfirmedCashAmount,
		PreviousBalance: currentBalance,
		NewBalance:      currentBalance.Add(req.ConfirmedCashAmount),
		ReferenceID:     handover.HandoverID,
		ReferenceType:   "SHIFT_HANDOVER",
		Description:     "Cash drawer received via handover",
	}, staffID, now)

	if err := s.handoverRepo.UpdateHandoverWithLedgerEntry(ctx, *handover, received); err != nil {
		s.LogError(ctx, err, "Failed to complete cash drawer handover",
			slog.String("handover_id", handoverID),
			slog.String("to_shift_id", toShift.ShiftID))
		return nil, err
	}

	s.LogInfo(ctx, "Cash drawer handover completed",
		slog.String("handover_id", handoverID),
		slog.String("to_shift_id", toShift.ShiftID),
		slog.String("confirmed_cash", req.ConfirmedCashAmount.String()))
	return handover, nil
}
