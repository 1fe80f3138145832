package pgsql

import (
	"github.com/SscSPs/receipts_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Per-customer totals over an optional creation window. $1 and $2 are nullable
// timestamptz bounds. Payments are grouped by method, not by the exception flag.
const (
	invoiceTotalsSQL = `
		SELECT customer_id,
		       SUM(cash_debt)    AS invoiced_cash,
		       SUM(cheque_debt)  AS invoiced_cheque,
		       SUM(total_amount) AS invoiced_total
		FROM invoices
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)
		GROUP BY customer_id`

	paymentTotalsSQL = `
		SELECT customer_id,
		       SUM(CASE WHEN method = 'CASH' THEN amount ELSE 0 END)  AS cash_paid,
		       SUM(CASE WHEN method <> 'CASH' THEN amount ELSE 0 END) AS cheque_paid
		FROM payments
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
		  AND ($2::timestamptz IS NULL OR created_at <= $2)
		GROUP BY customer_id`

	// aggregateColumnsSQL selects the four aggregate inputs from aliases i and p.
	aggregateColumnsSQL = `
		COALESCE(i.invoiced_cash, 0), COALESCE(i.invoiced_cheque, 0),
		COALESCE(p.cash_paid, 0), COALESCE(p.cheque_paid, 0)`
)

// aggregateScan holds scan targets for aggregateColumnsSQL.
type aggregateScan struct {
	InvoicedCash   decimal.Decimal
	InvoicedCheque decimal.Decimal
	CashPaid       decimal.Decimal
	ChequePaid     decimal.Decimal
}

func (a *aggregateScan) targets() []any {
	return []any{&a.InvoicedCash, &a.InvoicedCheque, &a.CashPaid, &a.ChequePaid}
}

func (a aggregateScan) toDomain() domain.AggregateBalance {
	return domain.AggregateBalance{
		InvoicedCash:   a.InvoicedCash,
		InvoicedCheque: a.InvoicedCheque,
		CashPaid:       a.CashPaid,
		ChequePaid:     a.ChequePaid,
	}
}
