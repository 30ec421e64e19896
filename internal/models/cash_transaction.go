package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransactionType mirrors domain.CashTransactionType for persistence.
type CashTransactionType string

// CashDrawerTransaction is the persistence model for the cash_drawer_transactions table.
type CashDrawerTransaction struct {
	TransactionID string              `db:"transaction_id"`
	ShiftID       string              `db:"shift_id"`
	StaffID       string              `db:"staff_id"`
	Type          CashTransactionType `db:"transaction_type"`

	Amount          decimal.Decimal `db:"amount"`
	PreviousBalance decimal.Decimal `db:"previous_balance"`
	NewBalance      decimal.Decimal `db:"new_balance"`

	CashAmount  *decimal.Decimal `db:"cash_amount"`
	CardAmount  *decimal.Decimal `db:"card_amount"`
	OtherAmount *decimal.Decimal `db:"other_amount"`

	ReferenceID   string `db:"reference_id"`
	ReferenceType string `db:"reference_type"`

	Description string `db:"description"`
	Notes       string `db:"notes"`

	VerifiedBy *string    `db:"verified_by"`
	VerifiedAt *time.Time `db:"verified_at"`

	AuditFields
}
