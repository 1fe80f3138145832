package dto

import (
	"time"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to create a new customer.
type CreateCustomerRequest struct {
	Name       string  `json:"name" binding:"required,max=200"`
	Phone      string  `json:"phone" binding:"max=50"`
	Notes      string  `json:"notes"`
	DelegateID *string `json:"delegateID" binding:"omitempty,uuid"` // Optional
}

// CustomerURI binds the customer_id path parameter.
type CustomerURI struct {
	CustomerID string `uri:"customer_id" binding:"required,uuid"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string          `json:"customerID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	DelegateID    *string         `json:"delegateID,omitempty"`
	DelegateName  string          `json:"delegateName,omitempty"`
	Balance       *domain.Balance `json:"balance,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		Phone:         c.Phone,
		Notes:         c.Notes,
		DelegateID:    c.DelegateID,
		DelegateName:  c.DelegateName,
		Balance:       c.Balance,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}

// ListCustomersResponse wraps the list of customers.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// CreateDelegateRequest defines the data needed to create a delegate.
type CreateDelegateRequest struct {
	Name  string `json:"name" binding:"required,max=200"`
	Phone string `json:"phone" binding:"max=50"`
	Role  string `json:"role" binding:"omitempty,max=50"` // Defaults to SALES
}

// DelegateURI binds the delegate_id path parameter.
type DelegateURI struct {
	DelegateID string `uri:"delegate_id" binding:"required,uuid"`
}

// DelegateResponse defines the data returned for a delegate.
type DelegateResponse struct {
	DelegateID string    `json:"delegateID"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToDelegateResponse converts a domain.Delegate to DelegateResponse DTO
func ToDelegateResponse(d *domain.Delegate) DelegateResponse {
	return DelegateResponse{
		DelegateID: d.DelegateID,
		Name:       d.Name,
		Phone:      d.Phone,
		Role:       string(d.Role),
		CreatedAt:  d.CreatedAt,
	}
}

// ListDelegatesResponse wraps the list of delegates.
type ListDelegatesResponse struct {
	Delegates []DelegateResponse `json:"delegates"`
}

// ToListDelegatesResponse converts delegates to their response wrapper.
func ToListDelegatesResponse(delegates []domain.Delegate) ListDelegatesResponse {
	res := ListDelegatesResponse{Delegates: make([]DelegateResponse, len(delegates))}
	for i := range delegates {
		res.Delegates[i] = ToDelegateResponse(&delegates[i])
	}
	return res
}
