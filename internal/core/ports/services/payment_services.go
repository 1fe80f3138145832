package services

import (
	"context"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/SscSPs/receipts_ledger/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, *string, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// RecordPayment stores a payment and, when it is linked to an invoice, the invoice's new
	// status. A non-empty idempotencyKey makes repeated submissions return the first payment.
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, idempotencyKey string) (*domain.RecordedPayment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
