package services

import (
	"context"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices. Returned invoices carry their
// remaining cash and cheque debts.
type InvoiceReaderSvc interface {
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice splits the total into cash and cheque debts and stores the invoice as UNPAID.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
