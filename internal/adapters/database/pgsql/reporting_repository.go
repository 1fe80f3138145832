package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetDashboardTotals sums outstanding debt and invoice volume across all customers.
// RecentPayments is left for the caller.
func (r *reportingRepository) GetDashboardTotals(ctx context.Context) (domain.DashboardStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(i.invoiced_total), 0),
		       COALESCE(SUM(i.invoiced_cash), 0), COALESCE(SUM(i.invoiced_cheque), 0),
		       COALESCE(SUM(p.cash_paid), 0), COALESCE(SUM(p.cheque_paid), 0)
		FROM customers c
		LEFT JOIN (` + invoiceTotalsSQL + `) i ON i.customer_id = c.customer_id
		LEFT JOIN (` + paymentTotalsSQL + `) p ON p.customer_id = c.customer_id;`

	var stats domain.DashboardStats
	var agg aggregateScan
	dest := append([]any{&stats.CustomerCount, &stats.TotalInvoiceVolume}, agg.targets()...)
	if err := r.Pool.QueryRow(ctx, query, nil, nil).Scan(dest...); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("error querying dashboard totals: %w", err)
	}

	balance := agg.toDomain().Balance()
	stats.TotalCashDebt = balance.Cash
	stats.TotalChequeDebt = balance.Cheque
	return stats, nil
}

// ListRecentPayments retrieves the latest payments across all customers.
func (r *reportingRepository) ListRecentPayments(ctx context.Context, limit int) ([]domain.Payment, error) {
	rows, err := r.Pool.Query(ctx, paymentSelectSQL+` ORDER BY p.created_at DESC, p.seq DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying recent payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

// ListInvoicesCreatedBetween retrieves invoices created in [from, to], oldest first.
func (r *reportingRepository) ListInvoicesCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	query := invoiceSelectSQL + ` WHERE i.created_at >= $1 AND i.created_at <= $2 ORDER BY i.created_at, i.seq;`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying invoices in period: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning invoice row: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	return invoices, nil
}

// ListPaymentsCreatedBetween retrieves payments created in [from, to], oldest first.
func (r *reportingRepository) ListPaymentsCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Payment, error) {
	query := paymentSelectSQL + ` WHERE p.created_at >= $1 AND p.created_at <= $2 ORDER BY p.created_at, p.seq;`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying payments in period: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

// GetDelegateDebts sums, per delegate, what their customers were invoiced and paid in the window.
func (r *reportingRepository) GetDelegateDebts(ctx context.Context, from, to *time.Time) ([]domain.DelegateDebt, error) {
	query := `
		SELECT d.delegate_id, d.name, COUNT(c.customer_id),
		       COALESCE(SUM(i.invoiced_cash), 0), COALESCE(SUM(i.invoiced_cheque), 0),
		       COALESCE(SUM(p.cash_paid), 0), COALESCE(SUM(p.cheque_paid), 0)
		FROM delegates d
		LEFT JOIN customers c ON c.delegate_id = d.delegate_id
		LEFT JOIN (` + invoiceTotalsSQL + `) i ON i.customer_id = c.customer_id
		LEFT JOIN (` + paymentTotalsSQL + `) p ON p.customer_id = c.customer_id
		GROUP BY d.delegate_id, d.name
		ORDER BY d.name, d.delegate_id;`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying delegate debts: %w", err)
	}
	defer rows.Close()

	result := []domain.DelegateDebt{}
	for rows.Next() {
		var row domain.DelegateDebt
		var agg aggregateScan
		dest := append([]any{&row.DelegateID, &row.DelegateName, &row.CustomerCount}, agg.targets()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning delegate debt row: %w", err)
		}
		balance := agg.toDomain().Balance()
		row.TotalCashDue = balance.Cash
		row.TotalChequeDue = balance.Cheque
		row.TotalDue = balance.Total
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating delegate debt rows: %w", err)
	}
	return result, nil
}
