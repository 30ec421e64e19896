package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/models"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const handoverColumns = `handover_id, from_staff_id, to_staff_id, from_shift_id, to_shift_id,
	handover_type, status, handover_notes, pending_tasks, important_notes,
	handover_time, accepted_at, completed_at, acceptance_notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxHandoverRepository struct {
	BaseRepository
}

// newPgxHandoverRepository creates a new repository for shift handover data.
func newPgxHandoverRepository(pool *pgxpool.Pool) portsrepo.HandoverRepositoryFacade {
	return &PgxHandoverRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxHandoverRepository implements portsrepo.HandoverRepositoryFacade
var _ portsrepo.HandoverRepositoryFacade = (*PgxHandoverRepository)(nil)

func scanHandover(row pgx.Row) (*models.ShiftHandover, error) {
	var m models.ShiftHandover
	err := row.Scan(
		&m.HandoverID,
		&m.FromStaffID,
		&m.ToStaffID,
		&m.FromShiftID,
		&m.ToShiftID,
		&m.Type,
		&m.Status,
		&m.HandoverNotes,
		&m.PendingTasks,
		&m.ImportantNotes,
		&m.HandoverTime,
		&m.AcceptedAt,
		&m.CompletedAt,
		&m.AcceptanceNotes,
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

func collectHandovers(rows pgx.Rows) ([]domain.ShiftHandover, error) {
	defer rows.Close()
	var handovers []models.ShiftHandover
	for rows.Next() {
		m, err := scanHandover(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan handover row", err)
		}
		handovers = append(handovers, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate handover rows", err)
	}
	ds, err := mapping.ToDomainHandoverSlice(handovers)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map handover rows", err)
	}
	return ds, nil
}

// SaveHandover persists a new handover.
func (r *PgxHandoverRepository) SaveHandover(ctx context.Context, handover domain.ShiftHandover) error {
	m, err := mapping.ToModelHandover(handover)
	if err != nil {
		return apperrors.NewAppError(500, "failed to serialize handover "+handover.HandoverID, err)
	}

	query := `
		INSERT INTO shift_handovers (` + handoverColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.HandoverID,
		m.FromStaffID,
		m.ToStaffID,
		m.FromShiftID,
		m.ToShiftID,
		m.Type,
		m.Status,
		m.HandoverNotes,
		m.PendingTasks,
		m.ImportantNotes,
		m.HandoverTime,
		m.AcceptedAt,
		m.CompletedAt,
		m.AcceptanceNotes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert handover "+m.HandoverID, err)
	}
	return nil
}

// FindHandoverByID retrieves a handover by its ID.
func (r *PgxHandoverRepository) FindHandoverByID(ctx context.Context, handoverID string) (*domain.ShiftHandover, error) {
	query := `SELECT ` + handoverColumns + ` FROM shift_handovers WHERE handover_id = $1;`

	m, err := scanHandover(r.Pool.QueryRow(ctx, query, handoverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: handover %s", apperrors.ErrNotFound, handoverID)
		}
		return nil, apperrors.NewAppError(500, "failed to find handover "+handoverID, err)
	}
	handover, err := mapping.ToDomainHandover(*m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map handover "+handoverID, err)
	}
	return &handover, nil
}

// ListPendingHandoversForStaff retrieves Pending handovers addressed to the
// staff member, most recent first.
func (r *PgxHandoverRepository) ListPendingHandoversForStaff(ctx context.Context, staffID string) ([]domain.ShiftHandover, error) {
	query := `
		SELECT ` + handoverColumns + `
		FROM shift_handovers
		WHERE to_staff_id = $1 AND status = $2
		ORDER BY handover_time DESC;
	`
	rows, err := r.Pool.Query(ctx, query, staffID, string(domain.HandoverPending))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pending handovers for staff "+staffID, err)
	}
	return collectHandovers(rows)
}

// ListHandovers retrieves a filtered handover history, most recent first.
func (r *PgxHandoverRepository) ListHandovers(ctx context.Context, filters portsrepo.HandoverListFilters, limit int) ([]domain.ShiftHandover, error) {
	var conditions []string
	var args []any

	if filters.StaffID != nil {
		args = append(args, *filters.StaffID)
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(from_staff_id = $"+n+" OR to_staff_id = $"+n+")")
	}
	if filters.Type != nil {
		args = append(args, string(*filters.Type))
		conditions = append(conditions, "handover_type = $"+strconv.Itoa(len(args)))
	}
	if filters.Status != nil {
		args = append(args, string(*filters.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if filters.DateFrom != nil {
		args = append(args, *filters.DateFrom)
		conditions = append(conditions, "handover_time >= $"+strconv.Itoa(len(args)))
	}
	if filters.DateTo != nil {
		args = append(args, *filters.DateTo)
		conditions = append(conditions, "handover_time <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + handoverColumns + ` FROM shift_handovers`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY handover_time DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query handover history", err)
	}
	return collectHandovers(rows)
}

// UpdateHandover overwrites the mutable fields of an existing handover.
func (r *PgxHandoverRepository) UpdateHandover(ctx context.Context, handover domain.ShiftHandover) error {
	return updateHandoverExec(ctx, r.Pool, handover)
}

// UpdateHandoverWithLedgerEntry overwrites the handover and appends the ledger
// entry in one database transaction, so a rejected append rolls back the
// handover write.
func (r *PgxHandoverRepository) UpdateHandoverWithLedgerEntry(ctx context.Context, handover domain.ShiftHandover, txn domain.CashDrawerTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updateHandoverExec(ctx, tx, handover); err != nil {
		return err
	}
	if err := appendCashTxnTx(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func updateHandoverExec(ctx context.Context, db dbExecutor, handover domain.ShiftHandover) error {
	m, err := mapping.ToModelHandover(handover)
	if err != nil {
		return apperrors.NewAppError(500, "failed to serialize handover "+handover.HandoverID, err)
	}

	query := `
		UPDATE shift_handovers SET
			to_shift_id = $2,
			status = $3,
			handover_notes = $4,
			pending_tasks = $5,
			important_notes = $6,
			accepted_at = $7,
			completed_at = $8,
			acceptance_notes = $9,
			last_updated_at = $10,
			last_updated_by = $11
		WHERE handover_id = $1;
	`
	tag, err := db.Exec(ctx, query,
		m.HandoverID,
		m.ToShiftID,
		m.Status,
		m.HandoverNotes,
		m.PendingTasks,
		m.ImportantNotes,
		m.AcceptedAt,
		m.CompletedAt,
		m.AcceptanceNotes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update handover "+m.HandoverID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: handover %s", apperrors.ErrNotFound, m.HandoverID)
	}
	return nil
}
