package mapping

import (
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/models"
)

// ToModelCashTransaction converts a domain CashDrawerTransaction to a model CashDrawerTransaction
func ToModelCashTransaction(d domain.CashDrawerTransaction) models.CashDrawerTransaction {
	return models.CashDrawerTransaction{
		TransactionID:   d.TransactionID,
		ShiftID:         d.ShiftID,
		StaffID:         d.StaffID,
		Type:            models.CashTransactionType(d.Type),
		Amount:          d.Amount,
		PreviousBalance: d.PreviousBalance,
		NewBalance:      d.NewBalance,
		CashAmount:      d.CashAmount,
		CardAmount:      d.CardAmount,
		OtherAmount:     d.OtherAmount,
		ReferenceID:     d.ReferenceID,
		ReferenceType:   d.ReferenceType,
		Description:     d.Description,
		Notes:           d.Notes,
		VerifiedBy:      d.VerifiedBy,
		VerifiedAt:      d.VerifiedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashTransaction converts a model CashDrawerTransaction to a domain CashDrawerTransaction
func ToDomainCashTransaction(m models.CashDrawerTransaction) domain.CashDrawerTransaction {
	return domain.CashDrawerTransaction{
		TransactionID:   m.TransactionID,
		ShiftID:         m.ShiftID,
		StaffID:         m.StaffID,
		Type:            domain.CashTransactionType(m.Type),
		Amount:          m.Amount,
		PreviousBalance: m.PreviousBalance,
		NewBalance:      m.NewBalance,
		CashAmount:      m.CashAmount,
		CardAmount:      m.CardAmount,
		OtherAmount:     m.OtherAmount,
		ReferenceID:     m.ReferenceID,
		ReferenceType:   m.ReferenceType,
		Description:     m.Description,
		Notes:           m.Notes,
		VerifiedBy:      m.VerifiedBy,
		VerifiedAt:      m.VerifiedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashTransactionSlice converts a slice of model transactions to domain transactions
func ToDomainCashTransactionSlice(ms []models.CashDrawerTransaction) []domain.CashDrawerTransaction {
	ds := make([]domain.CashDrawerTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashTransaction(m)
	}
	return ds
}
