package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/apperrors"
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/receipts_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const recentPaymentsLimit = 5

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboard summarises outstanding debt and the latest payments.
func (s *reportingService) GetDashboard(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.reportingRepo.GetDashboardTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve dashboard totals")
		return nil, fmt.Errorf("failed to retrieve dashboard totals: %w", err)
	}

	recent, err := s.reportingRepo.ListRecentPayments(ctx, recentPaymentsLimit)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve recent payments")
		return nil, fmt.Errorf("failed to retrieve recent payments: %w", err)
	}
	if recent == nil {
		recent = []domain.Payment{}
	}
	stats.RecentPayments = recent

	s.LogInfo(ctx, "Dashboard generated successfully", slog.Int("customer_count", stats.CustomerCount))
	return &stats, nil
}

// GetDailyPerformance lists invoices issued and payments collected in [from, to] with totals.
func (s *reportingService) GetDailyPerformance(ctx context.Context, from, to time.Time) (*domain.DailyPerformance, error) {
	if from.After(to) {
		return nil, apperrors.NewAppError(400, "from must not be after to", apperrors.ErrValidation)
	}

	invoices, err := s.reportingRepo.ListInvoicesCreatedBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve invoices for period",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve invoices for period: %w", err)
	}
	payments, err := s.reportingRepo.ListPaymentsCreatedBetween(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve payments for period",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve payments for period: %w", err)
	}

	report := &domain.DailyPerformance{
		From:          from,
		To:            to,
		Invoices:      invoices,
		Payments:      payments,
		InvoiceCount:  len(invoices),
		InvoiceAmount: decimal.Zero,
		PaymentCount:  len(payments),
		PaymentAmount: decimal.Zero,
	}
	for _, inv := range invoices {
		report.InvoiceAmount = report.InvoiceAmount.Add(inv.TotalAmount)
	}
	for _, p := range payments {
		report.PaymentAmount = report.PaymentAmount.Add(p.Amount)
	}

	s.LogInfo(ctx, "Daily performance report generated successfully",
		slog.String("from", from.Format(time.RFC3339)),
		slog.String("to", to.Format(time.RFC3339)),
		slog.Int("invoice_count", report.InvoiceCount),
		slog.Int("payment_count", report.PaymentCount))
	return report, nil
}

// GetDelegateDebts reports what each delegate's customers owe for activity in the window.
func (s *reportingService) GetDelegateDebts(ctx context.Context, from, to *time.Time) ([]domain.DelegateDebt, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, apperrors.NewAppError(400, "from must not be after to", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.GetDelegateDebts(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve delegate debts")
		return nil, fmt.Errorf("failed to retrieve delegate debts: %w", err)
	}
	if rows == nil {
		return []domain.DelegateDebt{}, nil
	}
	return rows, nil
}
