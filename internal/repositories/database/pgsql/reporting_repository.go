package pgsql

import (
	"context"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard report data.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// CountActiveShifts returns the number of shifts currently Active.
func (r *PgxReportingRepository) CountActiveShifts(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM shifts WHERE status = $1;`,
		string(domain.ShiftActive),
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count active shifts", err)
	}
	return count, nil
}

// CountShiftsEndedBetween returns the number of shifts whose actual end falls
// inside [from, to).
func (r *PgxReportingRepository) CountShiftsEndedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM shifts WHERE actual_end >= $1 AND actual_end < $2;`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count ended shifts", err)
	}
	return count, nil
}

// CountPendingHandovers returns the number of handovers currently Pending.
func (r *PgxReportingRepository) CountPendingHandovers(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM shift_handovers WHERE status = $1;`,
		string(domain.HandoverPending),
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count pending handovers", err)
	}
	return count, nil
}
