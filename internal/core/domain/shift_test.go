package domain_test

import (
	"testing"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestShiftStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ShiftStatus
		want   bool
	}{
		{name: "active", status: domain.ShiftActive, want: true},
		{name: "completed", status: domain.ShiftCompleted, want: true},
		{name: "unknown value", status: domain.ShiftStatus("PAUSED"), want: false},
		{name: "empty value", status: domain.ShiftStatus(""), want: false},
		{name: "lowercase is not normalized", status: domain.ShiftStatus("active"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestShiftStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.ShiftStatus
		to     domain.ShiftStatus
		want   bool
	}{
		{name: "active to completed", from: domain.ShiftActive, to: domain.ShiftCompleted, want: true},
		{name: "completed is terminal", from: domain.ShiftCompleted, to: domain.ShiftActive, want: false},
		{name: "no self transition", from: domain.ShiftActive, to: domain.ShiftActive, want: false},
		{name: "unknown source", from: domain.ShiftStatus("PAUSED"), to: domain.ShiftCompleted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestShift_IsStarted(t *testing.T) {
	now := time.Now()

	started := domain.Shift{ActualStart: &now}
	assert.True(t, started.IsStarted())

	scheduled := domain.Shift{}
	assert.False(t, scheduled.IsStarted())
}

func TestShift_Duration(t *testing.T) {
	start := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(8*time.Hour + 30*time.Minute)

	tests := []struct {
		name   string
		shift  domain.Shift
		want   time.Duration
		wantOK bool
	}{
		{
			name:   "both actual times recorded",
			shift:  domain.Shift{ActualStart: &start, ActualEnd: &end},
			want:   8*time.Hour + 30*time.Minute,
			wantOK: true,
		},
		{
			name:   "started but not ended",
			shift:  domain.Shift{ActualStart: &start},
			wantOK: false,
		},
		{
			name:   "never started",
			shift:  domain.Shift{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.shift.Duration()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
