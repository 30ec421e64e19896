package repositories

import (
	"context"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
)

// LedgerReader defines read operations for cash drawer ledger data
type LedgerReader interface {
	// FindTransactionByID retrieves a specific ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashDrawerTransaction, error)

	// FindLastTransactionForShift retrieves the most recently created ledger
	// entry for a shift, or nil when the shift has none.
	FindLastTransactionForShift(ctx context.Context, shiftID string) (*domain.CashDrawerTransaction, error)

	// ListTransactionsByShift retrieves all ledger entries for a shift, newest first.
	ListTransactionsByShift(ctx context.Context, shiftID string) ([]domain.CashDrawerTransaction, error)

	// ListTransactionsByShiftPaged retrieves ledger entries newest first using
	// token-based pagination. It returns the entries, a token for the next page,
	// and an error.
	ListTransactionsByShiftPaged(ctx context.Context, shiftID string, limit int, nextToken *string) ([]domain.CashDrawerTransaction, *string, error)
}

// LedgerWriter defines write operations for cash drawer ledger data
type LedgerWriter interface {
	// AppendTransaction appends one ledger entry for its shift. The append is
	// atomic with respect to other appends for the same shift: the repository
	// locks the shift row, re-reads the last entry, and rejects the insert with
	// apperrors.ErrValidation when the entry's previousBalance does not chain
	// from the stored running balance.
	AppendTransaction(ctx context.Context, txn domain.CashDrawerTransaction) error

	// MarkTransactionVerified attaches verification metadata to an entry.
	MarkTransactionVerified(ctx context.Context, transactionID, verifiedBy string, verifiedAt time.Time) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
