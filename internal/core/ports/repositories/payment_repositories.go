package repositories

import (
	"context"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatusResolverFunc computes an invoice's status from its total and the fresh sum of all
// payments linked to it, read inside the recording transaction.
type StatusResolverFunc func(total, paid decimal.Decimal) domain.InvoiceStatus

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID returns apperrors.ErrNotFound when the payment does not exist.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByInvoiceID returns payments linked to an invoice in creation order.
	ListPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error)

	// ListPaymentsByInvoiceIDs groups linked payments by invoice ID, each in creation order.
	ListPaymentsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]domain.Payment, error)

	// ListPayments lists payments newest first and returns a token for the next page.
	ListPayments(ctx context.Context, filter domain.PaymentFilter, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment inserts the payment. When it is linked to an invoice, the invoice row is
	// locked, the paid sum re-read, resolve called and the new status written, all in one
	// transaction. The updated invoice is returned for linked payments, nil otherwise.
	SavePayment(ctx context.Context, payment domain.Payment, resolve StatusResolverFunc) (*domain.Invoice, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
