package repositories

import (
	"context"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
)

// ShiftListFilters narrows a shift listing. Nil fields are ignored.
type ShiftListFilters struct {
	StaffID  *string
	Status   *domain.ShiftStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its unique identifier.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindActiveShiftsByStaff retrieves the Active shifts for one staff member,
	// most recently created first. The single-active invariant makes more than
	// one row an inconsistency the caller is expected to flag.
	FindActiveShiftsByStaff(ctx context.Context, staffID string) ([]domain.Shift, error)

	// ListActiveShifts retrieves every Active shift clinic-wide.
	ListActiveShifts(ctx context.Context) ([]domain.Shift, error)

	// ListShifts retrieves a filtered, paginated list of shifts ordered by
	// scheduled start, most recent first.
	ListShifts(ctx context.Context, filters ShiftListFilters, limit, offset int) ([]domain.Shift, error)

	// ListShiftsInRange retrieves shifts whose scheduled start falls inside
	// [from, to], oldest first, for reporting.
	ListShiftsInRange(ctx context.Context, from, to time.Time) ([]domain.Shift, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift persists a new shift. Returns apperrors.ErrDuplicate when the
	// staff member already has an Active shift.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// UpdateShift overwrites the mutable fields of an existing shift.
	UpdateShift(ctx context.Context, shift domain.Shift) error

	// UpdateShiftStats overwrites the denormalized aggregate columns. Nil fields
	// are left untouched.
	UpdateShiftStats(ctx context.Context, shiftID string, stats domain.ShiftStatsUpdate, updatedBy string, updatedAt time.Time) error

	// UpdateShiftWithLedgerEntry overwrites the shift and appends the ledger
	// entry within a single database transaction: either both persist or
	// neither does. The append is subject to the same balance-chain validation
	// as LedgerWriter.AppendTransaction.
	UpdateShiftWithLedgerEntry(ctx context.Context, shift domain.Shift, txn domain.CashDrawerTransaction) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
}

// ShiftRepositoryWithTx extends ShiftRepositoryFacade with transaction capabilities
type ShiftRepositoryWithTx interface {
	ShiftRepositoryFacade
	TransactionManager
}
