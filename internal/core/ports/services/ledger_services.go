package services

import (
	"context"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations for the cash drawer ledger
type LedgerReaderSvc interface {
	// GetCurrentBalance returns the running balance after the shift's most
	// recent ledger entry, or zero when the shift has none.
	GetCurrentBalance(ctx context.Context, shiftID string) (decimal.Decimal, error)

	// GetCashTransactions retrieves all ledger entries for a shift, newest first.
	GetCashTransactions(ctx context.Context, shiftID string) ([]domain.CashDrawerTransaction, error)

	// GetCashTransactionsPaged retrieves ledger entries newest first with
	// token-based pagination.
	GetCashTransactionsPaged(ctx context.Context, shiftID string, params dto.ListCashTransactionsParams) ([]domain.CashDrawerTransaction, *string, error)
}

// LedgerWriterSvc defines write operations for the cash drawer ledger
type LedgerWriterSvc interface {
	// CreateTransaction appends one immutable ledger entry. The stored running
	// balance is re-derived and a previousBalance mismatch is rejected.
	CreateTransaction(ctx context.Context, req dto.CreateCashTransactionRequest, staffID string) (*domain.CashDrawerTransaction, error)

	// VerifyTransaction attaches verification metadata to a ledger entry.
	VerifyTransaction(ctx context.Context, transactionID, verifiedBy string) (*domain.CashDrawerTransaction, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
