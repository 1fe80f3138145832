package services

import (
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// idempotency may be nil, in which case Idempotency-Key headers are ignored.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, idempotency portsrepo.IdempotencyStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo, repos.DelegateRepo)
	container.Delegate = NewDelegateService(repos.DelegateRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo, repos.PaymentRepo)

	paymentOptions := []PaymentServiceOption{}
	if idempotency != nil {
		paymentOptions = append(paymentOptions,
			WithIdempotencyStore(idempotency, cfg.IdempotencyTTL),
			WithPendingIdempotencyTTL(cfg.IdempotencyPendingTTL))
	}
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.CustomerRepo, repos.InvoiceRepo, paymentOptions...)

	container.Statement = NewStatementService(repos.StatementRepo, repos.CustomerRepo,
		WithDefaultWindowDays(cfg.StatementDefaultDays))
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Engine = NewEngineService()

	return container
}
