package services

import (
	portsrepo "github.com/openbooks-app/openbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/openbooks-app/openbooks_backend/internal/core/ports/services"
	"github.com/openbooks-app/openbooks_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The defaults resolver is shared: posting and payment recording both
	// read through the same TTL cache.
	container.AccountDefaults = NewAccountDefaultsService(repos.AccountDefaultRepo, cfg.DefaultsCacheTTL)

	builder := NewEntryBuilder()

	container.InvoicePosting = NewInvoicePostingService(
		repos.InvoiceRepo,
		repos.JournalRepo,
		container.AccountDefaults,
		builder,
		cfg.RevenueFallbackToDefault,
	)
	container.BillPosting = NewBillPostingService(
		repos.BillRepo,
		repos.JournalRepo,
		container.AccountDefaults,
		builder,
	)
	container.PaymentRecording = NewPaymentService(
		repos.InvoiceRepo,
		repos.BillRepo,
		repos.JournalRepo,
		repos.PaymentRepo,
		repos.BillPaymentRepo,
		container.AccountDefaults,
		builder,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoicePostingSvcFacade   = (*invoicePostingService)(nil)
	_ portssvc.BillPostingSvcFacade      = (*billPostingService)(nil)
	_ portssvc.PaymentRecordingSvcFacade = (*paymentService)(nil)
	_ portssvc.AccountDefaultsSvcFacade  = (*accountDefaultsService)(nil)
)
