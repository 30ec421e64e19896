package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/models"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shiftColumns = `shift_id, staff_id, shift_type, status, scheduled_start, scheduled_end,
	actual_start, actual_end, opening_cash_amount, closing_cash_amount, expected_cash_amount,
	cash_discrepancy, cash_discrepancy_notes, total_transactions, total_revenue, total_appointments,
	notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepositoryFacade
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

func scanShift(row pgx.Row) (*models.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.StaffID,
		&m.ShiftType,
		&m.Status,
		&m.ScheduledStart,
		&m.ScheduledEnd,
		&m.ActualStart,
		&m.ActualEnd,
		&m.OpeningCashAmount,
		&m.ClosingCashAmount,
		&m.ExpectedCashAmount,
		&m.CashDiscrepancy,
		&m.CashDiscrepancyNotes,
		&m.TotalTransactions,
		&m.TotalRevenue,
		&m.TotalAppointments,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectShifts(rows pgx.Rows) ([]domain.Shift, error) {
	defer rows.Close()
	var shifts []models.Shift
	for rows.Next() {
		m, err := scanShift(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan shift row", err)
		}
		shifts = append(shifts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate shift rows", err)
	}
	return mapping.ToDomainShiftSlice(shifts), nil
}

// SaveShift inserts a new shift. The partial unique index on Active shifts makes
// a second Active shift for the same staff member a unique violation, which is
// surfaced as apperrors.ErrDuplicate.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)

	query := `
		INSERT INTO shifts (` + shiftColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ShiftID,
		m.StaffID,
		m.ShiftType,
		m.Status,
		m.ScheduledStart,
		m.ScheduledEnd,
		m.ActualStart,
		m.ActualEnd,
		m.OpeningCashAmount,
		m.ClosingCashAmount,
		m.ExpectedCashAmount,
		m.CashDiscrepancy,
		m.CashDiscrepancyNotes,
		m.TotalTransactions,
		m.TotalRevenue,
		m.TotalAppointments,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: active shift already exists for staff %s", apperrors.ErrDuplicate, shift.StaffID)
		}
		return apperrors.NewAppError(500, "failed to insert shift "+m.ShiftID, err)
	}
	return nil
}

// FindShiftByID retrieves a shift by its ID.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`

	m, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, shiftID)
		}
		return nil, apperrors.NewAppError(500, "failed to find shift "+shiftID, err)
	}
	shift := mapping.ToDomainShift(*m)
	return &shift, nil
}

// FindActiveShiftsByStaff retrieves the Active shifts for one staff member, most
// recently created first.
func (r *PgxShiftRepository) FindActiveShiftsByStaff(ctx context.Context, staffID string) ([]domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE staff_id = $1 AND status = $2
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, staffID, models.ShiftActive)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active shifts for staff "+staffID, err)
	}
	return collectShifts(rows)
}

// ListActiveShifts retrieves every Active shift clinic-wide, most recently
// scheduled first.
func (r *PgxShiftRepository) ListActiveShifts(ctx context.Context) ([]domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE status = $1
		ORDER BY scheduled_start DESC;
	`
	rows, err := r.Pool.Query(ctx, query, models.ShiftActive)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query active shifts", err)
	}
	return collectShifts(rows)
}

// ListShifts retrieves a filtered, paginated shift listing ordered by scheduled
// start, most recent first.
func (r *PgxShiftRepository) ListShifts(ctx context.Context, filters portsrepo.ShiftListFilters, limit, offset int) ([]domain.Shift, error) {
	var conditions []string
	var args []any

	if filters.StaffID != nil {
		args = append(args, *filters.StaffID)
		conditions = append(conditions, "staff_id = $"+strconv.Itoa(len(args)))
	}
	if filters.Status != nil {
		args = append(args, string(*filters.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if filters.DateFrom != nil {
		args = append(args, *filters.DateFrom)
		conditions = append(conditions, "scheduled_start >= $"+strconv.Itoa(len(args)))
	}
	if filters.DateTo != nil {
		args = append(args, *filters.DateTo)
		conditions = append(conditions, "scheduled_start <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + shiftColumns + ` FROM shifts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY scheduled_start DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query shifts", err)
	}
	return collectShifts(rows)
}

// ListShiftsInRange retrieves shifts whose scheduled start falls inside
// [from, to], oldest first.
func (r *PgxShiftRepository) ListShiftsInRange(ctx context.Context, from, to time.Time) ([]domain.Shift, error) {
	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE scheduled_start >= $1 AND scheduled_start <= $2
		ORDER BY scheduled_start ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query shifts in range", err)
	}
	return collectShifts(rows)
}

// UpdateShift overwrites the mutable fields of an existing shift.
func (r *PgxShiftRepository) UpdateShift(ctx context.Context, shift domain.Shift) error {
	return updateShiftExec(ctx, r.Pool, shift)
}

// UpdateShiftWithLedgerEntry overwrites the shift and appends the ledger entry
// in one database transaction, so a rejected append rolls back the shift write.
func (r *PgxShiftRepository) UpdateShiftWithLedgerEntry(ctx context.Context, shift domain.Shift, txn domain.CashDrawerTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updateShiftExec(ctx, tx, shift); err != nil {
		return err
	}
	if err := appendCashTxnTx(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func updateShiftExec(ctx context.Context, db dbExecutor, shift domain.Shift) error {
	m := mapping.ToModelShift(shift)

	query := `
		UPDATE shifts SET
			shift_type = $2,
			status = $3,
			scheduled_start = $4,
			scheduled_end = $5,
			actual_start = $6,
			actual_end = $7,
			opening_cash_amount = $8,
			closing_cash_amount = $9,
			expected_cash_amount = $10,
			cash_discrepancy = $11,
			cash_discrepancy_notes = $12,
			notes = $13,
			last_updated_at = $14,
			last_updated_by = $15
		WHERE shift_id = $1;
	`
	tag, err := db.Exec(ctx, query,
		m.ShiftID,
		m.ShiftType,
		m.Status,
		m.ScheduledStart,
		m.ScheduledEnd,
		m.ActualStart,
		m.ActualEnd,
		m.OpeningCashAmount,
		m.ClosingCashAmount,
		m.ExpectedCashAmount,
		m.CashDiscrepancy,
		m.CashDiscrepancyNotes,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update shift "+m.ShiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, m.ShiftID)
	}
	return nil
}

// UpdateShiftStats overwrites the denormalized aggregate columns. Nil fields are
// left untouched.
func (r *PgxShiftRepository) UpdateShiftStats(ctx context.Context, shiftID string, stats domain.ShiftStatsUpdate, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE shifts SET
			total_transactions = COALESCE($2, total_transactions),
			total_revenue = COALESCE($3, total_revenue),
			total_appointments = COALESCE($4, total_appointments),
			last_updated_at = $5,
			last_updated_by = $6
		WHERE shift_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		shiftID,
		stats.TotalTransactions,
		stats.TotalRevenue,
		stats.TotalAppointments,
		updatedAt,
		updatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update shift stats for "+shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, shiftID)
	}
	return nil
}
