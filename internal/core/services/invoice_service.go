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

type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	customerRepo portsrepo.CustomerReader
	paymentRepo  portsrepo.PaymentReader
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, customerRepo portsrepo.CustomerReader, paymentRepo portsrepo.PaymentReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
	}
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	split, err := receipts.Split(req.TotalAmount)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer for invoice", slog.String("customer_id", req.CustomerID))
		}
		return nil, err
	}

	now := time.Now().UTC()
	invoiceDate := now
	if req.InvoiceDate != nil && !req.InvoiceDate.IsZero() {
		invoiceDate = req.InvoiceDate.UTC()
	}

	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		CustomerID:  customer.CustomerID,
		TotalAmount: split.Total(),
		CashDebt:    split.Cash,
		ChequeDebt:  split.Cheque,
		InvoiceDate: invoiceDate,
		Notes:       req.Notes,
		Status:      domain.StatusUnpaid,
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	saved, err := s.invoiceRepo.SaveInvoice(ctx, invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.String("invoice_id", invoice.InvoiceID),
			slog.String("customer_id", invoice.CustomerID))
		return nil, err
	}

	saved.CustomerName = customer.Name
	saved.Remaining = &split

	s.LogInfo(ctx, "Invoice created successfully",
		slog.String("invoice_id", saved.InvoiceID),
		slog.String("invoice_number", saved.InvoiceNumber),
		slog.String("total", saved.TotalAmount.String()))
	return saved, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID", slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}

	invoices := []domain.Invoice{*invoice}
	if err := s.attachRemaining(ctx, invoices); err != nil {
		return nil, err
	}
	return &invoices[0], nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error) {
	invoices, next, err := s.invoiceRepo.ListInvoices(ctx, params.CustomerID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.Int("limit", params.Limit))
		return nil, nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil, nil
	}
	if err := s.attachRemaining(ctx, invoices); err != nil {
		return nil, nil, err
	}
	return invoices, next, nil
}

// attachRemaining replays each invoice's linked payments over its split.
func (s *invoiceService) attachRemaining(ctx context.Context, invoices []domain.Invoice) error {
	ids := make([]string, len(invoices))
	for i := range invoices {
		ids[i] = invoices[i].InvoiceID
	}

	byInvoice, err := s.paymentRepo.ListPaymentsByInvoiceIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payments for invoices", slog.Int("invoice_count", len(ids)))
		return err
	}

	for i := range invoices {
		remaining, _, err := receipts.Replay(invoices[i].Split(), mapping.ToPaymentInputs(byInvoice[invoices[i].InvoiceID]))
		if err != nil {
			err = fmt.Errorf("invoice %s: %w", invoices[i].InvoiceID, err)
			s.LogError(ctx, err, "Failed to derive remaining debts")
			return err
		}
		invoices[i].Remaining = &remaining
	}
	return nil
}
