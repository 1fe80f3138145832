package mapping

import (
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		CustomerID:  d.CustomerID,
		InvoiceID:   ToNullString(d.InvoiceID),
		Amount:      d.Amount,
		Method:      string(d.Method),
		IsException: d.IsException,
		BankName:    d.BankName,
		Notes:       d.Notes,
		Seq:         d.Seq,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		CustomerID:  m.CustomerID,
		InvoiceID:   FromNullString(m.InvoiceID),
		Amount:      m.Amount,
		Method:      domain.PaymentMethod(m.Method),
		IsException: m.IsException,
		BankName:    m.BankName,
		Notes:       m.Notes,
		Seq:         m.Seq,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToPaymentInputs extracts the allocation inputs of payments, preserving order.
func ToPaymentInputs(payments []domain.Payment) []domain.PaymentInput {
	inputs := make([]domain.PaymentInput, len(payments))
	for i := range payments {
		inputs[i] = payments[i].Input()
	}
	return inputs
}

// ToPaymentEvent converts a payment to its statement event.
func ToPaymentEvent(d domain.Payment) domain.LedgerEvent {
	event := domain.LedgerEvent{
		Type:        domain.EventPayment,
		ID:          d.PaymentID,
		Seq:         d.Seq,
		Reference:   string(d.Method),
		CreatedAt:   d.CreatedAt,
		Amount:      d.Amount,
		Method:      d.Method,
		IsException: d.IsException,
		InvoiceID:   d.InvoiceID,
	}
	if d.InvoiceNumber != "" {
		event.Reference = d.InvoiceNumber
	}
	return event
}
