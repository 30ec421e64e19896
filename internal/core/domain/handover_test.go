package domain_test

import (
	"testing"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHandoverStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.HandoverStatus
		to   domain.HandoverStatus
		want bool
	}{
		{name: "pending to accepted", from: domain.HandoverPending, to: domain.HandoverAccepted, want: true},
		{name: "pending to rejected", from: domain.HandoverPending, to: domain.HandoverRejected, want: true},
		{name: "pending directly to completed", from: domain.HandoverPending, to: domain.HandoverCompleted, want: true},
		{name: "accepted to completed", from: domain.HandoverAccepted, to: domain.HandoverCompleted, want: true},
		{name: "accepted cannot be rejected", from: domain.HandoverAccepted, to: domain.HandoverRejected, want: false},
		{name: "completed is terminal", from: domain.HandoverCompleted, to: domain.HandoverAccepted, want: false},
		{name: "rejected is terminal", from: domain.HandoverRejected, to: domain.HandoverPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestHandoverStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status domain.HandoverStatus
		want   bool
	}{
		{name: "pending", status: domain.HandoverPending, want: false},
		{name: "accepted", status: domain.HandoverAccepted, want: false},
		{name: "completed", status: domain.HandoverCompleted, want: true},
		{name: "rejected", status: domain.HandoverRejected, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestHandoverStatus_IsValid(t *testing.T) {
	assert.True(t, domain.HandoverPending.IsValid())
	assert.True(t, domain.HandoverRejected.IsValid())
	assert.False(t, domain.HandoverStatus("ARCHIVED").IsValid())
	assert.False(t, domain.HandoverStatus("").IsValid())
}

func TestShiftHandover_CashSnapshot(t *testing.T) {
	amount := decimal.NewFromInt(320)

	tests := []struct {
		name     string
		handover domain.ShiftHandover
		want     decimal.Decimal
		wantOK   bool
	}{
		{
			name: "cash amount note present",
			handover: domain.ShiftHandover{
				ImportantNotes: []domain.HandoverNote{
					{Kind: domain.NoteText, Text: "Keys in the drawer"},
					{Kind: domain.NoteCashAmount, CashAmount: &amount},
				},
			},
			want:   amount,
			wantOK: true,
		},
		{
			name: "cash amount note without amount is skipped",
			handover: domain.ShiftHandover{
				ImportantNotes: []domain.HandoverNote{
					{Kind: domain.NoteCashAmount},
				},
			},
			wantOK: false,
		},
		{
			name: "only text notes",
			handover: domain.ShiftHandover{
				ImportantNotes: []domain.HandoverNote{
					{Kind: domain.NoteText, Text: "Call maintenance"},
				},
			},
			wantOK: false,
		},
		{
			name:     "no notes",
			handover: domain.ShiftHandover{},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.handover.CashSnapshot()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want))
			}
		})
	}
}
