package mapping

import (
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		CustomerID:    d.CustomerID,
		TotalAmount:   d.TotalAmount,
		CashDebt:      d.CashDebt,
		ChequeDebt:    d.ChequeDebt,
		InvoiceDate:   d.InvoiceDate,
		Notes:         d.Notes,
		Status:        string(d.Status),
		Seq:           d.Seq,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		TotalAmount:   m.TotalAmount,
		CashDebt:      m.CashDebt,
		ChequeDebt:    m.ChequeDebt,
		InvoiceDate:   m.InvoiceDate,
		Notes:         m.Notes,
		Status:        domain.InvoiceStatus(m.Status),
		Seq:           m.Seq,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToInvoiceEvent converts an invoice to its statement event.
func ToInvoiceEvent(d domain.Invoice) domain.LedgerEvent {
	split := d.Split()
	return domain.LedgerEvent{
		Type:      domain.EventInvoice,
		ID:        d.InvoiceID,
		Seq:       d.Seq,
		Reference: d.InvoiceNumber,
		CreatedAt: d.CreatedAt,
		Amount:    d.TotalAmount,
		Split:     &split,
		Status:    d.Status,
	}
}
