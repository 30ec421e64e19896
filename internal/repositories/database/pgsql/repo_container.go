package pgsql

import (
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	shiftRepo := newPgxShiftRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	handoverRepo := newPgxHandoverRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ShiftRepo:     shiftRepo,
		LedgerRepo:    ledgerRepo,
		HandoverRepo:  handoverRepo,
		ReportingRepo: reportingRepo,
	}
}
