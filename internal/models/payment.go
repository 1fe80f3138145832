package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	CustomerID  string          `db:"customer_id"`
	InvoiceID   sql.NullString  `db:"invoice_id"`
	Amount      decimal.Decimal `db:"amount"`
	Method      string          `db:"method"`
	IsException bool            `db:"is_exception"`
	BankName    string          `db:"bank_name"`
	Notes       string          `db:"notes"`
	Seq         int64           `db:"seq"`
	AuditFields
}
