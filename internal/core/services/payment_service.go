package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/SscSPs/receipts_ledger/internal/core/receipts"
	"github.com/SscSPs/receipts_ledger/internal/dto"
	"github.com/SscSPs/receipts_ledger/internal/utils/mapping"
	"github.com/google/uuid"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	// defaultPendingTTL bounds how long a submission that never finished blocks its key.
	defaultPendingTTL = 2 * time.Minute
)

type paymentService struct {
	BaseService
	paymentRepo    portsrepo.PaymentRepositoryFacade
	customerRepo   portsrepo.CustomerReader
	invoiceRepo    portsrepo.InvoiceReader
	idempotency    portsrepo.IdempotencyStore
	idempotencyTTL time.Duration
	pendingTTL     time.Duration
	now            func() time.Time
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithIdempotencyStore enables Idempotency-Key handling backed by store.
func WithIdempotencyStore(store portsrepo.IdempotencyStore, ttl time.Duration) PaymentServiceOption {
	return func(s *paymentService) {
		s.idempotency = store
		if ttl > 0 {
			s.idempotencyTTL = ttl
		}
	}
}

// WithPendingIdempotencyTTL sets how long a key stays reserved before its payment is recorded.
func WithPendingIdempotencyTTL(ttl time.Duration) PaymentServiceOption {
	return func(s *paymentService) {
		if ttl > 0 {
			s.pendingTTL = ttl
		}
	}
}

// WithPaymentClock overrides the clock used to timestamp payments.
func WithPaymentClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.now = now
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, customerRepo portsrepo.CustomerReader, invoiceRepo portsrepo.InvoiceReader, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo:    paymentRepo,
		customerRepo:   customerRepo,
		invoiceRepo:    invoiceRepo,
		idempotencyTTL: defaultIdempotencyTTL,
		pendingTTL:     defaultPendingTTL,
		now:            time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure paymentService implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, idempotencyKey string) (*domain.RecordedPayment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be greater than zero, got %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}
	if !req.Method.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Method)
	}

	if idempotencyKey == "" || s.idempotency == nil {
		return s.recordPayment(ctx, req)
	}

	fingerprint := req.Fingerprint()
	reserved, existing, err := s.idempotency.Reserve(ctx, idempotencyKey, fingerprint, s.pendingTTL)
	if err != nil {
		s.LogError(ctx, err, "Failed to reserve idempotency key")
		return nil, err
	}
	if !reserved {
		if existing.Fingerprint != fingerprint {
			return nil, apperrors.NewAppError(409, "idempotency key was already used for a different payment", apperrors.ErrConflict)
		}
		return s.replay(ctx, idempotencyKey, existing.PaymentID)
	}

	recorded, err := s.recordPayment(ctx, req)
	if err != nil {
		if relErr := s.idempotency.Release(ctx, idempotencyKey); relErr != nil {
			s.LogError(ctx, relErr, "Failed to release idempotency key")
		}
		return nil, err
	}

	if err := s.idempotency.Complete(ctx, idempotencyKey, recorded.Payment.PaymentID, s.idempotencyTTL); err != nil {
		// The payment is committed; a retry with this key may record it twice.
		s.LogError(ctx, err, "Failed to complete idempotency key",
			slog.String("payment_id", recorded.Payment.PaymentID))
	}
	return recorded, nil
}

func (s *paymentService) replay(ctx context.Context, key, paymentID string) (*domain.RecordedPayment, error) {
	if paymentID == "" {
		return nil, apperrors.NewAppError(409, "a payment with this idempotency key is still being processed", apperrors.ErrConflict)
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payment for idempotency key", slog.String("payment_id", paymentID))
		return nil, err
	}

	recorded := &domain.RecordedPayment{Payment: *payment, Replayed: true}
	if payment.InvoiceID != nil {
		invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, *payment.InvoiceID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load invoice for replayed payment", slog.String("invoice_id", *payment.InvoiceID))
			return nil, err
		}
		recorded.Invoice = invoice
	}

	s.LogInfo(ctx, "Replayed payment for idempotency key", slog.String("payment_id", paymentID))
	return recorded, nil
}

func (s *paymentService) recordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.RecordedPayment, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer for payment", slog.String("customer_id", req.CustomerID))
		}
		return nil, err
	}

	now := s.now().UTC()
	payment := domain.Payment{
		PaymentID:    uuid.NewString(),
		CustomerID:   customer.CustomerID,
		InvoiceID:    req.InvoiceID,
		Amount:       req.Amount,
		Method:       req.Method,
		IsException:  req.IsException,
		BankName:     req.BankName,
		Notes:        req.Notes,
		AuditFields:  domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		CustomerName: customer.Name,
	}
	if payment.InvoiceID != nil && *payment.InvoiceID == "" {
		payment.InvoiceID = nil
	}

	var allocation *domain.AllocationResult
	if payment.InvoiceID != nil {
		allocation, err = s.previewAllocation(ctx, payment)
		if err != nil {
			return nil, err
		}
	}

	invoice, err := s.paymentRepo.SavePayment(ctx, payment, receipts.ResolvePaid)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("payment_id", payment.PaymentID),
			slog.String("customer_id", payment.CustomerID))
		return nil, err
	}

	if invoice != nil {
		payment.InvoiceNumber = invoice.InvoiceNumber
		if allocation != nil {
			remaining := allocation.RemainingDebts
			invoice.Remaining = &remaining
		}
	}

	s.LogInfo(ctx, "Payment recorded successfully",
		slog.String("payment_id", payment.PaymentID),
		slog.String("customer_id", payment.CustomerID),
		slog.String("amount", payment.Amount.String()),
		slog.String("method", string(payment.Method)))
	return &domain.RecordedPayment{Payment: payment, Invoice: invoice, Allocation: allocation}, nil
}

// previewAllocation applies payment to what the linked invoice still owes.
func (s *paymentService) previewAllocation(ctx context.Context, payment domain.Payment) (*domain.AllocationResult, error) {
	invoiceID := *payment.InvoiceID
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice for payment", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	if invoice.CustomerID != payment.CustomerID {
		return nil, apperrors.NewAppError(400, "invoice does not belong to customer", apperrors.ErrValidation)
	}

	linked, err := s.paymentRepo.ListPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for invoice", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	remaining, _, err := receipts.Replay(invoice.Split(), mapping.ToPaymentInputs(linked))
	if err != nil {
		s.LogError(ctx, err, "Failed to derive remaining debts", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	allocation, err := receipts.Apply(remaining, payment.Input())
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (s *paymentService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	filter := domain.PaymentFilter{CustomerID: params.CustomerID, From: params.From, To: params.To}
	payments, next, err := s.paymentRepo.ListPayments(ctx, filter, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.Int("limit", params.Limit))
		return nil, nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil, nil
	}
	return payments, next, nil
}
