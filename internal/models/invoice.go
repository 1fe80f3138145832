package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CustomerID    string          `db:"customer_id"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	CashDebt      decimal.Decimal `db:"cash_debt"`
	ChequeDebt    decimal.Decimal `db:"cheque_debt"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	Notes         string          `db:"notes"`
	Status        string          `db:"status"`
	Seq           int64           `db:"seq"`
	AuditFields
}
