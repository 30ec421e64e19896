package domain_test

import (
	"testing"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCashTransactionType_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		txnType domain.CashTransactionType
		want    bool
	}{
		{name: "opening", txnType: domain.CashTxnOpening, want: true},
		{name: "closing", txnType: domain.CashTxnClosing, want: true},
		{name: "handover", txnType: domain.CashTxnHandover, want: true},
		{name: "sale", txnType: domain.CashTxnSale, want: true},
		{name: "refund", txnType: domain.CashTxnRefund, want: true},
		{name: "adjustment", txnType: domain.CashTxnAdjustment, want: true},
		{name: "unknown value", txnType: domain.CashTransactionType("WITHDRAWAL"), want: false},
		{name: "empty value", txnType: domain.CashTransactionType(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txnType.IsValid())
		})
	}
}

func TestCashDrawerTransaction_IsVerified(t *testing.T) {
	now := time.Now()
	staffID := "staff_123"

	tests := []struct {
		name string
		txn  domain.CashDrawerTransaction
		want bool
	}{
		{
			name: "verified",
			txn:  domain.CashDrawerTransaction{VerifiedBy: &staffID, VerifiedAt: &now},
			want: true,
		},
		{
			name: "unverified",
			txn:  domain.CashDrawerTransaction{},
			want: false,
		},
		{
			name: "verifier recorded without timestamp",
			txn:  domain.CashDrawerTransaction{VerifiedBy: &staffID},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.IsVerified())
		})
	}
}

func TestCashDrawerTransaction_ChainsFrom(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.CashDrawerTransaction
		prev *domain.CashDrawerTransaction
		want bool
	}{
		{
			name: "first entry starts at zero",
			txn:  domain.CashDrawerTransaction{PreviousBalance: decimal.Zero},
			prev: nil,
			want: true,
		},
		{
			name: "first entry with nonzero previous balance",
			txn:  domain.CashDrawerTransaction{PreviousBalance: decimal.NewFromInt(50)},
			prev: nil,
			want: false,
		},
		{
			name: "continues prior running balance",
			txn:  domain.CashDrawerTransaction{PreviousBalance: decimal.NewFromInt(200)},
			prev: &domain.CashDrawerTransaction{NewBalance: decimal.NewFromInt(200)},
			want: true,
		},
		{
			name: "breaks prior running balance",
			txn:  domain.CashDrawerTransaction{PreviousBalance: decimal.NewFromInt(180)},
			prev: &domain.CashDrawerTransaction{NewBalance: decimal.NewFromInt(200)},
			want: false,
		},
		{
			name: "decimal scale does not matter",
			txn:  domain.CashDrawerTransaction{PreviousBalance: decimal.RequireFromString("200.00")},
			prev: &domain.CashDrawerTransaction{NewBalance: decimal.NewFromInt(200)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.ChainsFrom(tt.prev))
		})
	}
}
