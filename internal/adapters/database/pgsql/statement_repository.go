package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/receipts_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/receipts_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type statementRepository struct {
	BaseRepository
}

func newStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepository {
	return &statementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StatementRepository = (*statementRepository)(nil)

// ListLedgerEvents retrieves a customer's invoices and payments created in the window.
// Events come back per kind in creation order; the caller merges them.
func (r *statementRepository) ListLedgerEvents(ctx context.Context, customerID string, from, to *time.Time) ([]domain.LedgerEvent, error) {
	window := ` AND ($2::timestamptz IS NULL OR %[1]s.created_at >= $2)
		AND ($3::timestamptz IS NULL OR %[1]s.created_at <= $3)`

	invoiceQuery := invoiceSelectSQL + ` WHERE i.customer_id = $1` + fmt.Sprintf(window, "i") + ` ORDER BY i.created_at, i.seq;`
	rows, err := r.Pool.Query(ctx, invoiceQuery, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for statement of %s: %w", customerID, err)
	}
	defer rows.Close()

	events := []domain.LedgerEvent{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		events = append(events, mapping.ToInvoiceEvent(inv))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}
	rows.Close()

	paymentQuery := paymentSelectSQL + ` WHERE p.customer_id = $1` + fmt.Sprintf(window, "p") + ` ORDER BY p.created_at, p.seq;`
	payRows, err := r.Pool.Query(ctx, paymentQuery, customerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for statement of %s: %w", customerID, err)
	}
	defer payRows.Close()

	for payRows.Next() {
		p, err := scanPayment(payRows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		events = append(events, mapping.ToPaymentEvent(p))
	}
	if err := payRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return events, nil
}

// GetAggregateBalance sums a customer's whole history.
func (r *statementRepository) GetAggregateBalance(ctx context.Context, customerID string) (domain.AggregateBalance, error) {
	query := `
		SELECT` + aggregateColumnsSQL + `
		FROM customers c
		LEFT JOIN (` + invoiceTotalsSQL + `) i ON i.customer_id = c.customer_id
		LEFT JOIN (` + paymentTotalsSQL + `) p ON p.customer_id = c.customer_id
		WHERE c.customer_id = $3;`

	var agg aggregateScan
	if err := r.Pool.QueryRow(ctx, query, nil, nil, customerID).Scan(agg.targets()...); err != nil {
		return domain.AggregateBalance{}, fmt.Errorf("failed to aggregate balance of %s: %w", customerID, err)
	}
	return agg.toDomain(), nil
}
