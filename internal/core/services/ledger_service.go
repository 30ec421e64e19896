package services

import (
	"context"
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

// ledgerService maintains the append-only cash drawer balance trail per shift.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateTransaction appends one immutable ledger entry for a shift. The
// repository re-derives the stored running balance under a shift-scoped lock and
// rejects the append when the supplied previousBalance does not chain from it.
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateCashTransactionRequest, staffID string) (*domain.CashDrawerTransaction, error) {
	txnType := domain.CashTransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: transaction amount must not be negative", apperrors.ErrValidation)
	}

	txn := buildCashDrawerEntry(req, staffID, time.Now())

	if err := s.ledgerRepo.AppendTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to append cash drawer transaction",
			slog.String("shift_id", req.ShiftID),
			slog.String("transaction_type", req.Type))
		return nil, err
	}

	s.LogInfo(ctx, "Cash drawer transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("shift_id", txn.ShiftID),
		slog.String("transaction_type", string(txn.Type)),
		slog.String("new_balance", txn.NewBalance.String()))
	return &txn, nil
}

// buildCashDrawerEntry assembles an immutable ledger entry with a fresh ID and
// audit fields. Shared with the shift and handover services, which persist the
// entry together with their own state change.
func buildCashDrawerEntry(req dto.CreateCashTransactionRequest, staffID string, now time.Time) domain.CashDrawerTransaction {
	return domain.CashDrawerTransaction{
		TransactionID:   uuid.NewString(),
		ShiftID:         req.ShiftID,
		StaffID:         staffID,
		Type:            domain.CashTransactionType(req.Type),
		Amount:          req.Amount,
		PreviousBalance: req.PreviousBalance,
		NewBalance:      req.NewBalance,
		CashAmount:      req.CashAmount,
		CardAmount:      req.CardAmount,
		OtherAmount:     req.OtherAmount,
		ReferenceID:     req.ReferenceID,
		ReferenceType:   req.ReferenceType,
		Description:     req.Description,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     staffID,
			LastUpdatedAt: now,
			LastUpdatedBy: staffID,
		},
	}
}

// GetCurrentBalance returns the newBalance of the most recent ledger entry for
// the shift, or zero when the shift has no entries.
func (s *ledgerService) GetCurrentBalance(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	last, err := s.ledgerRepo.FindLastTransactionForShift(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find last cash drawer transaction", slog.String("shift_id", shiftID))
		return decimal.Zero, err
	}
	if last == nil {
		return decimal.Zero, nil
	}
	return last.NewBalance, nil
}

// GetCashTransactions retrieves every ledger entry for a shift, newest first.
func (s *ledgerService) GetCashTransactions(ctx context.Context, shiftID string) ([]domain.CashDrawerTransaction, error) {
	txns, err := s.ledgerRepo.ListTransactionsByShift(ctx, shiftID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash drawer transactions", slog.String("shift_id", shiftID))
		return nil, err
	}
	return txns, nil
}

// GetCashTransactionsPaged retrieves ledger entries newest first with
// token-based pagination.
func (s *ledgerService) GetCashTransactionsPaged(ctx context.Context, shiftID string, params dto.ListCashTransactionsParams) ([]domain.CashDrawerTransaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	txns, nextToken, err := s.ledgerRepo.ListTransactionsByShiftPaged(ctx, shiftID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash drawer transactions page", slog.String("shift_id", shiftID))
		return nil, nil, err
	}
	return txns, nextToken, nil
}

// VerifyTransaction attaches verification metadata to an existing ledger entry.
// The entry's balances are untouched.
func (s *ledgerService) VerifyTransaction(ctx context.Context, transactionID, verifiedBy string) (*domain.CashDrawerTransaction, error) {
	txn, err := s.ledgerRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find cash drawer transaction for verification", slog.String("transaction_id", transactionID))
		return nil, err
	}

	now := time.Now()
	if err := s.ledgerRepo.MarkTransactionVerified(ctx, transactionID, verifiedBy, now); err != nil {
		s.LogError(ctx, err, "Failed to mark cash drawer transaction verified", slog.String("transaction_id", transactionID))
		return nil, err
	}

	txn.VerifiedBy = &verifiedBy
	txn.VerifiedAt = &now
	s.LogInfo(ctx, "Cash drawer transaction verified",
		slog.String("transaction_id", transactionID),
		slog.String("verified_by", verifiedBy))
	return txn, nil
}
