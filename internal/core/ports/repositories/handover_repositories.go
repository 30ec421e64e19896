package repositories

import (
	"context"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
)

// HandoverListFilters narrows a handover history listing. Nil fields are ignored.
type HandoverListFilters struct {
	StaffID  *string // Matches either side of the handover
	Type     *domain.HandoverType
	Status   *domain.HandoverStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// HandoverReader defines read operations for handover data
type HandoverReader interface {
	// FindHandoverByID retrieves a specific handover by its unique identifier.
	FindHandoverByID(ctx context.Context, handoverID string) (*domain.ShiftHandover, error)

	// ListPendingHandoversForStaff retrieves Pending handovers addressed to the
	// staff member, most recent first.
	ListPendingHandoversForStaff(ctx context.Context, staffID string) ([]domain.ShiftHandover, error)

	// ListHandovers retrieves a filtered handover history, most recent first.
	ListHandovers(ctx context.Context, filters HandoverListFilters, limit int) ([]domain.ShiftHandover, error)
}

// HandoverWriter defines write operations for handover data
type HandoverWriter interface {
	// SaveHandover persists a new handover.
	SaveHandover(ctx context.Context, handover domain.ShiftHandover) error

	// UpdateHandover overwrites the mutable fields of an existing handover.
	UpdateHandover(ctx context.Context, handover domain.ShiftHandover) error

	// UpdateHandoverWithLedgerEntry overwrites the handover and appends the
	// ledger entry within a single database transaction: either both persist
	// or neither does. The append is subject to the same balance-chain
	// validation as LedgerWriter.AppendTransaction.
	UpdateHandoverWithLedgerEntry(ctx context.Context, handover domain.ShiftHandover, txn domain.CashDrawerTransaction) error
}

// HandoverRepositoryFacade combines all handover repository interfaces
type HandoverRepositoryFacade interface {
	HandoverReader
	HandoverWriter
}
