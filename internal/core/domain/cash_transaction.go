package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransactionType classifies a cash drawer ledger entry.
type CashTransactionType string

const (
	CashTxnOpening    CashTransactionType = "OPENING"
	CashTxnClosing    CashTransactionType = "CLOSING"
	CashTxnHandover   CashTransactionType = "HANDOVER"
	CashTxnSale       CashTransactionType = "SALE"
	CashTxnRefund     CashTransactionType = "REFUND"
	CashTxnAdjustment CashTransactionType = "ADJUSTMENT"
)

// knownCashTxnTypes lists every enumerated transaction type.
var knownCashTxnTypes = map[CashTransactionType]struct{}{
	CashTxnOpening:    {},
	CashTxnClosing:    {},
	CashTxnHandover:   {},
	CashTxnSale:       {},
	CashTxnRefund:     {},
	CashTxnAdjustment: {},
}

// IsValid reports whether the type is one of the enumerated values.
func (t CashTransactionType) IsValid() bool {
	_, ok := knownCashTxnTypes[t]
	return ok
}

// CashDrawerTransaction is one immutable entry in a shift's append-only cash ledger.
// Entries are never mutated after creation except to attach verification metadata,
// and never deleted.
type CashDrawerTransaction struct {
	TransactionID string              `json:"transactionID"` // Primary Key (UUID)
	ShiftID       string              `json:"shiftID"`       // FK -> Shift (Not Null)
	StaffID       string              `json:"staffID"`       // May differ from the shift owner during a handover
	Type          CashTransactionType `json:"type"`

	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`

	// Optional tender split for entries that mix payment methods.
	CashAmount  *decimal.Decimal `json:"cashAmount"`
	CardAmount  *decimal.Decimal `json:"cardAmount"`
	OtherAmount *decimal.Decimal `json:"otherAmount"`

	// Optional link back to the billing event that caused the entry.
	ReferenceID   string `json:"referenceID"`
	ReferenceType string `json:"referenceType"`

	Description string `json:"description"`
	Notes       string `json:"notes"`

	VerifiedBy *string    `json:"verifiedBy"`
	VerifiedAt *time.Time `json:"verifiedAt"`

	AuditFields
}

// IsVerified reports whether the entry has been manually verified.
func (t *CashDrawerTransaction) IsVerified() bool {
	return t.VerifiedBy != nil && t.VerifiedAt != nil
}

// ChainsFrom reports whether this entry's previousBalance continues the running
// balance of the given prior entry. A nil prior entry means this is the first
// entry for the shift, which starts at zero; a received cash drawer restarts the
// ledger through a HANDOVER entry whose previousBalance is also zero.
func (t *CashDrawerTransaction) ChainsFrom(prev *CashDrawerTransaction) bool {
	if prev == nil {
		return t.PreviousBalance.IsZero()
	}
	return t.PreviousBalance.Equal(prev.NewBalance)
}
