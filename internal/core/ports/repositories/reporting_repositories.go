package repositories

import (
	"context"
	"time"
)

// ReportingRepository defines read operations for dashboard report data
type ReportingRepository interface {
	// CountActiveShifts returns the number of shifts currently Active.
	CountActiveShifts(ctx context.Context) (int, error)

	// CountShiftsEndedBetween returns the number of shifts whose actual end falls
	// inside [from, to).
	CountShiftsEndedBetween(ctx context.Context, from, to time.Time) (int, error)

	// CountPendingHandovers returns the number of handovers currently Pending.
	CountPendingHandovers(ctx context.Context) (int, error)
}
