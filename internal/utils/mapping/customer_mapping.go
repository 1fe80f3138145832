package mapping

import (
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Phone:       d.Phone,
		Notes:       d.Notes,
		DelegateID:  ToNullString(d.DelegateID),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Phone:       m.Phone,
		Notes:       m.Notes,
		DelegateID:  FromNullString(m.DelegateID),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDelegate converts a domain Delegate to a model Delegate
func ToModelDelegate(d domain.Delegate) models.Delegate {
	return models.Delegate{
		DelegateID:  d.DelegateID,
		Name:        d.Name,
		Phone:       d.Phone,
		Role:        string(d.Role),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDelegate converts a model Delegate to a domain Delegate
func ToDomainDelegate(m models.Delegate) domain.Delegate {
	return domain.Delegate{
		DelegateID:  m.DelegateID,
		Name:        m.Name,
		Phone:       m.Phone,
		Role:        domain.DelegateRole(m.Role),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
