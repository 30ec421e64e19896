package dto

import (
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashTransactionRequest defines the data needed to append a ledger entry.
// PreviousBalance is what the caller believes the drawer held before this entry;
// the ledger re-derives the stored balance and rejects a mismatch.
type CreateCashTransactionRequest struct {
	ShiftID         string          `json:"shiftID" binding:"required"`
	Type            string          `json:"type" binding:"required,oneof=OPENING CLOSING HANDOVER SALE REFUND ADJUSTMENT"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance" binding:"required"`

	CashAmount  *decimal.Decimal `json:"cashAmount"`
	CardAmount  *decimal.Decimal `json:"cardAmount"`
	OtherAmount *decimal.Decimal `json:"otherAmount"`

	ReferenceID   string `json:"referenceID"`
	ReferenceType string `json:"referenceType"`
	Description   string `json:"description"`
	Notes         string `json:"notes"`
}

// ListCashTransactionsParams defines the pagination inputs for the ledger listing.
type ListCashTransactionsParams struct {
	Limit     int     `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

// CashTransactionResponse defines the data returned for a ledger entry.
type CashTransactionResponse struct {
	TransactionID   string                     `json:"transactionID"`
	ShiftID         string                     `json:"shiftID"`
	StaffID         string                     `json:"staffID"`
	Type            domain.CashTransactionType `json:"type"`
	Amount          decimal.Decimal            `json:"amount"`
	PreviousBalance decimal.Decimal            `json:"previousBalance"`
	NewBalance      decimal.Decimal            `json:"newBalance"`
	CashAmount      *decimal.Decimal           `json:"cashAmount,omitempty"`
	CardAmount      *decimal.Decimal           `json:"cardAmount,omitempty"`
	OtherAmount     *decimal.Decimal           `json:"otherAmount,omitempty"`
	ReferenceID     string                     `json:"referenceID,omitempty"`
	ReferenceType   string                     `json:"referenceType,omitempty"`
	Description     string                     `json:"description,omitempty"`
	Notes           string                     `json:"notes,omitempty"`
	VerifiedBy      *string                    `json:"verifiedBy,omitempty"`
	VerifiedAt      *time.Time                 `json:"verifiedAt,omitempty"`
	CreatedAt       time.Time                  `json:"createdAt"`
}

// ListCashTransactionsResponse is the paginated ledger listing payload.
type ListCashTransactionsResponse struct {
	Transactions []CashTransactionResponse `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}

// ToCashTransactionResponse converts a domain transaction to its response DTO.
func ToCashTransactionResponse(t *domain.CashDrawerTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		TransactionID:   t.TransactionID,
		ShiftID:         t.ShiftID,
		StaffID:         t.StaffID,
		Type:            t.Type,
		Amount:          t.Amount,
		PreviousBalance: t.PreviousBalance,
		NewBalance:      t.NewBalance,
		CashAmount:      t.CashAmount,
		CardAmount:      t.CardAmount,
		OtherAmount:     t.OtherAmount,
		ReferenceID:     t.ReferenceID,
		ReferenceType:   t.ReferenceType,
		Description:     t.Description,
		Notes:           t.Notes,
		VerifiedBy:      t.VerifiedBy,
		VerifiedAt:      t.VerifiedAt,
		CreatedAt:       t.CreatedAt,
	}
}

// ToCashTransactionResponses converts a slice of domain transactions.
func ToCashTransactionResponses(txns []domain.CashDrawerTransaction) []CashTransactionResponse {
	responses := make([]CashTransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToCashTransactionResponse(&txns[i])
	}
	return responses
}
