package repositories

import (
	"context"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID returns apperrors.ErrNotFound when the invoice does not exist.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices lists invoices newest first, optionally for one customer.
	// It returns the invoices and a token for the next page.
	ListInvoices(ctx context.Context, customerID *string, limit int, nextToken *string) ([]domain.Invoice, *string, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice assigns the next invoice number from the store's sequence and persists the invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
