package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinicdesk/clinic_frontdesk_app/internal/apperrors"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/core/domain"
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/models"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/utils/mapping"
	"github.com/clinicdesk/clinic_frontdesk_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cashTxnColumns = `transaction_id, shift_id, staff_id, transaction_type, amount,
	previous_balance, new_balance, cash_amount, card_amount, other_amount,
	reference_id, reference_type, description, notes, verified_by, verified_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for cash drawer ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func scanCashTxn(row pgx.Row) (*models.CashDrawerTransaction, error) {
	var m models.CashDrawerTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.ShiftID,
		&m.StaffID,
		&m.Type,
		&m.Amount,
		&m.PreviousBalance,
		&m.NewBalance,
		&m.CashAmount,
		&m.CardAmount,
		&m.OtherAmount,
		&m.ReferenceID,
		&m.ReferenceType,
		&m.Description,
		&m.Notes,
		&m.VerifiedBy,
		&m.VerifiedAt,
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

func collectCashTxns(rows pgx.Rows) ([]models.CashDrawerTransaction, error) {
	defer rows.Close()
	var txns []models.CashDrawerTransaction
	for rows.Next() {
		m, err := scanCashTxn(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash transaction row", err)
		}
		txns = append(txns, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate cash transaction rows", err)
	}
	return txns, nil
}

// AppendTransaction appends one ledger entry inside a database transaction that
// serializes appends per shift: the shift row is locked, the last entry is
// re-read, and the insert is rejected when the entry's previousBalance does not
// chain from the stored running balance. Two concurrent appends for the same
// shift therefore cannot both read the same stale balance.
func (r *PgxLedgerRepository) AppendTransaction(ctx context.Context, txn domain.CashDrawerTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := appendCashTxnTx(ctx, tx, txn); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// appendCashTxnTx performs the locked, chain-validated append inside an
// already-open transaction. Callers that update another row in the same
// transaction get all-or-nothing persistence of both writes.
func appendCashTxnTx(ctx context.Context, tx pgx.Tx, txn domain.CashDrawerTransaction) error {
	m := mapping.ToModelCashTransaction(txn)

	// Lock the owning shift row for the duration of the append.
	var lockedShiftID string
	err := tx.QueryRow(ctx, `SELECT shift_id FROM shifts WHERE shift_id = $1 FOR UPDATE;`, m.ShiftID).Scan(&lockedShiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: shift %s", apperrors.ErrNotFound, m.ShiftID)
		}
		return apperrors.NewAppError(500, "failed to lock shift "+m.ShiftID, err)
	}

	// Re-derive the running balance from the last stored entry.
	lastQuery := `
		SELECT new_balance FROM cash_drawer_transactions
		WHERE shift_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT 1;
	`
	stored, err := scanLastBalance(ctx, tx, lastQuery, m.ShiftID)
	if err != nil {
		return err
	}

	var prev *domain.CashDrawerTransaction
	if stored != nil {
		prev = &domain.CashDrawerTransaction{NewBalance: stored.NewBalance}
	}
	if !txn.ChainsFrom(prev) {
		if prev == nil {
			return fmt.Errorf("%w: previous balance %s does not match empty ledger (expected 0) for shift %s",
				apperrors.ErrValidation, m.PreviousBalance.String(), m.ShiftID)
		}
		return fmt.Errorf("%w: previous balance %s does not match current ledger balance %s for shift %s",
			apperrors.ErrValidation, m.PreviousBalance.String(), prev.NewBalance.String(), m.ShiftID)
	}

	insertQuery := `
		INSERT INTO cash_drawer_transactions (` + cashTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.ShiftID,
		m.StaffID,
		m.Type,
		m.Amount,
		m.PreviousBalance,
		m.NewBalance,
		m.CashAmount,
		m.CardAmount,
		m.OtherAmount,
		m.ReferenceID,
		m.ReferenceType,
		m.Description,
		m.Notes,
		m.VerifiedBy,
		m.VerifiedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cash transaction "+m.TransactionID, err)
	}

	return nil
}

// scanLastBalance reads the last entry's balance inside the append transaction.
// Returns nil when the shift has no entries yet.
func scanLastBalance(ctx context.Context, tx pgx.Tx, query, shiftID string) (*models.CashDrawerTransaction, error) {
	var m models.CashDrawerTransaction
	err := tx.QueryRow(ctx, query, shiftID).Scan(&m.NewBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to read last ledger balance for shift "+shiftID, err)
	}
	return &m, nil
}

// FindTransactionByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.CashDrawerTransaction, error) {
	query := `SELECT ` + cashTxnColumns + ` FROM cash_drawer_transactions WHERE transaction_id = $1;`

	m, err := scanCashTxn(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: cash transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to find cash transaction "+transactionID, err)
	}
	txn := mapping.ToDomainCashTransaction(*m)
	return &txn, nil
}

// FindLastTransactionForShift retrieves the most recently created ledger entry
// for a shift, or nil when the shift has none.
func (r *PgxLedgerRepository) FindLastTransactionForShift(ctx context.Context, shiftID string) (*domain.CashDrawerTransaction, error) {
	query := `
		SELECT ` + cashTxnColumns + `
		FROM cash_drawer_transactions
		WHERE shift_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT 1;
	`
	m, err := scanCashTxn(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find last cash transaction for shift "+shiftID, err)
	}
	txn := mapping.ToDomainCashTransaction(*m)
	return &txn, nil
}

// ListTransactionsByShift retrieves all ledger entries for a shift, newest first.
func (r *PgxLedgerRepository) ListTransactionsByShift(ctx context.Context, shiftID string) ([]domain.CashDrawerTransaction, error) {
	query := `
		SELECT ` + cashTxnColumns + `
		FROM cash_drawer_transactions
		WHERE shift_id = $1
		ORDER BY created_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cash transactions for shift "+shiftID, err)
	}
	ms, err := collectCashTxns(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCashTransactionSlice(ms), nil
}

// ListTransactionsByShiftPaged retrieves ledger entries newest first using
// token-based pagination keyed on (created_at, transaction_id).
func (r *PgxLedgerRepository) ListTransactionsByShiftPaged(ctx context.Context, shiftID string, limit int, nextToken *string) ([]domain.CashDrawerTransaction, *string, error) {
	query := `
		SELECT ` + cashTxnColumns + `
		FROM cash_drawer_transactions
		WHERE shift_id = $1
	`
	args := []any{shiftID}

	if nextToken != nil && *nextToken != "" {
		createdAt, transactionID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, createdAt, transactionID)
	}

	// Fetch one extra row to detect whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query cash transactions page for shift "+shiftID, err)
	}
	ms, err := collectCashTxns(rows)
	if err != nil {
		return nil, nil, err
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		lastTxn := ms[len(ms)-1]
		encoded := pagination.EncodeToken(lastTxn.CreatedAt, lastTxn.TransactionID)
		token = &encoded
	}

	return mapping.ToDomainCashTransactionSlice(ms), token, nil
}

// MarkTransactionVerified attaches verification metadata to a ledger entry.
func (r *PgxLedgerRepository) MarkTransactionVerified(ctx context.Context, transactionID, verifiedBy string, verifiedAt time.Time) error {
	query := `
		UPDATE cash_drawer_transactions SET
			verified_by = $2,
			verified_at = $3,
			last_updated_at = $3,
			last_updated_by = $2
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, verifiedBy, verifiedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark cash transaction verified "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: cash transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}
