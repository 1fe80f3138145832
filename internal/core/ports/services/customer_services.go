package services

import (
	"context"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer together with its live balance.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers ordered by name, each with its live balance.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}

// DelegateSvcFacade manages the sales delegates customers can be assigned to.
type DelegateSvcFacade interface {
	CreateDelegate(ctx context.Context, req dto.CreateDelegateRequest) (*domain.Delegate, error)
	ListDelegates(ctx context.Context) ([]domain.Delegate, error)
	DeleteDelegate(ctx context.Context, delegateID string) (*domain.Delegate, error)
}
