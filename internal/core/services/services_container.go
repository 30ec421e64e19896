package services

import (
	portsrepo "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/repositories"
	portssvc "github.com/clinicdesk/clinic_frontdesk_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger has no service dependencies and the other services build on it
	container.Ledger = NewLedgerService(repos.LedgerRepo)

	container.Shift = NewShiftService(repos.ShiftRepo, container.Ledger)
	container.Handover = NewHandoverService(repos.HandoverRepo, repos.ShiftRepo, container.Ledger)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.ShiftRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.ShiftSvcFacade    = (*shiftService)(nil)
	_ portssvc.HandoverSvcFacade = (*handoverService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
)
