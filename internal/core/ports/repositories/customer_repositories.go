package repositories

import (
	"context"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID returns apperrors.ErrNotFound when the customer does not exist.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomersWithBalances returns every customer ordered by name with live balances.
	ListCustomersWithBalances(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

// DelegateRepositoryFacade covers delegate persistence.
type DelegateRepositoryFacade interface {
	SaveDelegate(ctx context.Context, delegate domain.Delegate) error
	FindDelegateByID(ctx context.Context, delegateID string) (*domain.Delegate, error)
	ListDelegates(ctx context.Context) ([]domain.Delegate, error)
	// DeleteDelegate returns apperrors.ErrNotFound when nothing was deleted.
	DeleteDelegate(ctx context.Context, delegateID string) (*domain.Delegate, error)
}
