package services_test

import (
	"context"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockShiftRepository is a mock type for the ShiftRepositoryFacade interface
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindActiveShiftsByStaff(ctx context.Context, staffID string) ([]domain.Shift, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListActiveShifts(ctx context.Context) ([]domain.Shift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShifts(ctx context.Context, filters portsrepo.ShiftListFilters, limit, offset int) ([]domain.Shift, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShiftsInRange(ctx context.Context, from, to time.Time) ([]domain.Shift, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateShiftWithLedgerEntry(ctx context.Context, shift domain.Shift, txn domain.CashDrawerTransaction) error {
	args := m.Called(ctx, shift, txn)
	return args.Error(0)
}

func (m *MockShiftRepository) UpdateShiftStats(ctx context.Context, shiftID string, stats domain.ShiftStatsUpdate, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, shiftID, stats, updatedBy, updatedAt)
	return args.Error(0)
}

// MockLedgerRepository is a mock type for the LedgerRepositoryFacade interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashDrawerTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashDrawerTransaction), args.Error(1)
}

func (m *MockLedgerRepository) FindLastTransactionForShift(ctx context.Context, shiftID string) (*domain.CashDrawerTransaction, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashDrawerTransaction), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByShift(ctx context.Context, shiftID string) ([]domain.CashDrawerTransaction, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashDrawerTransaction), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByShiftPaged(ctx context.Context, shiftID string, limit int, nextToken *string) ([]domain.CashDrawerTransaction, *string, error) {
	args := m.Called(ctx, shiftID, limit, nextToken)
	var txns []domain.CashDrawerTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.CashDrawerTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockLedgerRepository) AppendTransaction(ctx context.Context, txn domain.CashDrawerTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) MarkTransactionVerified(ctx context.Context, transactionID, verifiedBy string, verifiedAt time.Time) error {
	args := m.Called(ctx, transactionID, verifiedBy, verifiedAt)
	return args.Error(0)
}

// MockHandoverRepository is a mock type for the HandoverRepositoryFacade interface
type MockHandoverRepository struct {
	mock.Mock
}

func (m *MockHandoverRepository) FindHandoverByID(ctx context.Context, handoverID string) (*domain.ShiftHandover, error) {
	args := m.Called(ctx, handoverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftHandover), args.Error(1)
}

func (m *MockHandoverRepository) ListPendingHandoversForStaff(ctx context.Context, staffID string) ([]domain.ShiftHandover, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftHandover), args.Error(1)
}

func (m *MockHandoverRepository) ListHandovers(ctx context.Context, filters portsrepo.HandoverListFilters, limit int) ([]domain.ShiftHandover, error) {
	args := m.Called(ctx, filters, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftHandover), args.Error(1)
}

func (m *MockHandoverRepository) SaveHandover(ctx context.Context, handover domain.ShiftHandover) error {
	args := m.Called(ctx, handover)
	return args.Error(0)
}

func (m *MockHandoverRepository) UpdateHandover(ctx context.Context, handover domain.ShiftHandover) error {
	args := m.Called(ctx, handover)
	return args.Error(0)
}

func (m *MockHandoverRepository) UpdateHandoverWithLedgerEntry(ctx context.Context, handover domain.ShiftHandover, txn domain.CashDrawerTransaction) error {
	args := m.Called(ctx, handover, txn)
	return args.Error(0)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) CountActiveShifts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountShiftsEndedBetween(ctx context.Context, from, to time.Time) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockReportingRepository) CountPendingHandovers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockLedgerService is a mock type for the LedgerSvcFacade interface, used by
// the shift and handover tests to isolate them from ledger behavior.
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetCurrentBalance(ctx context.Context, shiftID string) (decimal.Decimal, error) {
	args := m.Called(ctx, shiftID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) GetCashTransactions(ctx context.Context, shiftID string) ([]domain.CashDrawerTransaction, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashDrawerTransaction), args.Error(1)
}

func (m *MockLedgerService) GetCashTransactionsPaged(ctx context.Context, shiftID string, params dto.ListCashTransactionsParams) ([]domain.CashDrawerTransaction, *string, error) {
	args := m.Called(ctx, shiftID, params)
	var txns []domain.CashDrawerTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.CashDrawerTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockLedgerService) CreateTransaction(ctx context.Context, req dto.CreateCashTransactionRequest, staffID string) (*domain.CashDrawerTransaction, error) {
	args := m.Called(ctx, req, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashDrawerTransaction), args.Error(1)
}

func (m *MockLedgerService) VerifyTransaction(ctx context.Context, transactionID, verifiedBy string) (*domain.CashDrawerTransaction, error) {
	args := m.Called(ctx, transactionID, verifiedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashDrawerTransaction), args.Error(1)
}
