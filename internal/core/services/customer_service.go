package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/google/uuid"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	delegateRepo portsrepo.DelegateRepositoryFacade
}

// NewCustomerService creates a new customer service. delegateRepo is used to check a
// requested delegate exists before assigning it.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, delegateRepo portsrepo.DelegateRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, delegateRepo: delegateRepo}
}

// Ensure customerService implements the CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewAppError(400, "customer name is required", apperrors.ErrValidation)
	}

	var delegateName string
	if req.DelegateID != nil && *req.DelegateID != "" {
		delegate, err := s.delegateRepo.FindDelegateByID(ctx, *req.DelegateID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewAppError(400, "delegate does not exist", apperrors.ErrValidation)
			}
			s.LogError(ctx, err, "Failed to find delegate", slog.String("delegate_id", *req.DelegateID))
			return nil, err
		}
		delegateName = delegate.Name
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       name,
		Phone:      strings.TrimSpace(req.Phone),
		Notes:      req.Notes,
		DelegateID: req.DelegateID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	customer.DelegateName = delegateName
	balance := domain.AggregateBalance{}.Balance()
	customer.Balance = &balance

	s.LogInfo(ctx, "Customer created successfully", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by ID", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomersWithBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}
