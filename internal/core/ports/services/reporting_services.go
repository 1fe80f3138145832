package services

import (
	"context"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
)

// StatementSvc produces customer statements of account.
type StatementSvc interface {
	// GetStatement replays the customer's events within [from, to] and reports the all-time balance.
	GetStatement(ctx context.Context, customerID string, from, to *time.Time) (*domain.StatementOfAccount, error)
}

// ReportingService defines the interface for generating receivables reports
type ReportingService interface {
	GetDashboard(ctx context.Context) (*domain.DashboardStats, error)
	GetDailyPerformance(ctx context.Context, from, to time.Time) (*domain.DailyPerformance, error)
	GetDelegateDebts(ctx context.Context, from, to *time.Time) ([]domain.DelegateDebt, error)
}
