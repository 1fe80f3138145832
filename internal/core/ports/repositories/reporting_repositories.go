package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
)

// StatementRepository feeds the statement of account.
type StatementRepository interface {
	// ListLedgerEvents returns a customer's invoices and payments created within [from, to].
	// Nil bounds are open.
	ListLedgerEvents(ctx context.Context, customerID string, from, to *time.Time) ([]domain.LedgerEvent, error)

	// GetAggregateBalance sums the customer's entire history, ignoring any window.
	GetAggregateBalance(ctx context.Context, customerID string) (domain.AggregateBalance, error)
}

// ReportingRepository defines the aggregate queries behind the reports.
type ReportingRepository interface {
	GetDashboardTotals(ctx context.Context) (domain.DashboardStats, error)
	ListRecentPayments(ctx context.Context, limit int) ([]domain.Payment, error)
	ListInvoicesCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Invoice, error)
	ListPaymentsCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error)
	GetDelegateDebts(ctx context.Context, from, to *time.Time) ([]domain.DelegateDebt, error)
}
